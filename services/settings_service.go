package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/models"
)

// GetSettings returns the user's settings, or the defaults when nothing was
// ever saved. Reading never creates a row.
func GetSettings(userID uint) (models.UserSettings, error) {
	var s models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserSettings{UserID: userID}, nil
	}
	return s, err
}

// GetSettingsRow is GetSettings without the default fallback: nil means the
// user never saved settings. The prompt builder is the one caller that cares
// about the difference.
func GetSettingsRow(userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func validateMacroSplit(enabled bool, protein, carbs, fat float64) error {
	if !enabled {
		return nil
	}
	for _, pct := range []float64{protein, carbs, fat} {
		if pct < 0 || pct > 100 {
			return ErrInvalidMacroSplit
		}
	}
	if math.Abs(protein+carbs+fat-100) > 1e-9 {
		return ErrInvalidMacroSplit
	}
	return nil
}

// UpsertSettings validates and writes the user's settings, creating the row
// on first save. Percentages are unchecked while the toggle is off.
func UpsertSettings(userID uint, enabled bool, protein, carbs, fat float64) (models.UserSettings, error) {
	if err := validateMacroSplit(enabled, protein, carbs, fat); err != nil {
		return models.UserSettings{}, err
	}

	var s models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.UserSettings{
			UserID:       userID,
			MacroEnabled: enabled,
			ProteinPct:   protein,
			CarbsPct:     carbs,
			FatPct:       fat,
		}
		return s, config.DB.Create(&s).Error
	}
	if err != nil {
		return models.UserSettings{}, err
	}

	s.MacroEnabled = enabled
	s.ProteinPct = protein
	s.CarbsPct = carbs
	s.FatPct = fat
	return s, config.DB.Save(&s).Error
}
