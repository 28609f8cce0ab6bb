package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/models"
)

// Column order for uploads and downloads.
var ingredientCSVHeader = []string{"name", "calories_per_gram", "protein_per_gram", "fat_per_gram", "carbs_per_gram"}

func ListIngredients(userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&ingredients).Error
	return ingredients, err
}

func CountIngredients(userID uint) (int64, error) {
	var count int64
	err := config.DB.Model(&models.Ingredient{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ReplaceIngredients swaps the user's whole table for the given rows in one
// transaction. Uploads are full-replace, never a merge.
func ReplaceIngredients(userID uint, rows []models.Ingredient) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].UserID = userID
		}
		return tx.Create(&rows).Error
	})
}

// ParseIngredientsCSV reads rows in the upload format. Extra columns are
// ignored; a missing required column or a bad value rejects the whole file
// so no partial table ever lands.
func ParseIngredientsCSV(r io.Reader) ([]models.Ingredient, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: empty or unreadable file", ErrInvalidCSV)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range ingredientCSVHeader {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: must contain columns: %s", ErrInvalidCSV, strings.Join(ingredientCSVHeader, ", "))
		}
	}

	var out []models.Ingredient
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		values := make(map[string]float64, 4)
		for _, col := range ingredientCSVHeader[1:] {
			raw := strings.TrimSpace(record[idx[col]])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid value %q for %s", ErrInvalidCSV, raw, col)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: %s must be non-negative", ErrInvalidCSV, col)
			}
			values[col] = v
		}

		out = append(out, models.Ingredient{
			Name:            strings.TrimSpace(record[idx["name"]]),
			CaloriesPerGram: values["calories_per_gram"],
			ProteinPerGram:  values["protein_per_gram"],
			FatPerGram:      values["fat_per_gram"],
			CarbsPerGram:    values["carbs_per_gram"],
		})
	}
	return out, nil
}

// WriteIngredientsCSV serializes the table in the same format uploads use.
func WriteIngredientsCSV(w io.Writer, ingredients []models.Ingredient) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ingredientCSVHeader); err != nil {
		return err
	}
	for _, ing := range ingredients {
		record := []string{
			ing.Name,
			formatFloat(ing.CaloriesPerGram),
			formatFloat(ing.ProteinPerGram),
			formatFloat(ing.FatPerGram),
			formatFloat(ing.CarbsPerGram),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
