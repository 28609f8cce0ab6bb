package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/logger"
	"github.com/marcelonyc/nutrition-chat/models"
	"github.com/marcelonyc/nutrition-chat/utils"
)

const minPasswordLength = 8

const resetTokenTTL = 24 * time.Hour

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// RegisterUser creates an account. Email and username must both be unused.
func RegisterUser(email, username, password, fullName string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	if err := config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: hashed,
		FullName: fullName,
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns a signed access token. The
// identifier may be a username or an email address. Unknown accounts, wrong
// passwords and disabled accounts all fail the same way.
func AuthenticateUser(identifier, password string, cfg config.Config) (string, error) {
	var user models.User
	err := config.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Username, cfg)
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the mutable profile fields.
func UpdateProfile(userID uint, fullName string) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword swaps the password after verifying the current one.
func ChangePassword(userID uint, current, newPassword string) error {
	user, err := GetUserByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(current, user.Password) {
		return ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}

// RequestPasswordReset issues a single-use reset token for the account, when
// one exists. Callers must answer identically either way.
func RequestPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	user.ResetToken = utils.GenerateRandomToken(32)
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, user.ResetToken); err != nil {
		logger.Warn("reset email not sent", zap.String("email", user.Email), zap.Error(err))
	}
	return nil
}

// ResetPassword redeems a reset token. Tokens expire and are cleared on use.
func ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}

	var user models.User
	err := config.DB.Where("reset_token = ?", token).First(&user).Error
	if err != nil || time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}

// DeleteAccount removes the user and everything they own in one transaction.
func DeleteAccount(userID uint) error {
	if _, err := GetUserByID(userID); err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		chatIDs := tx.Model(&models.ChatSession{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("chat_id IN (?)", chatIDs).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ChatSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSettings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// SeedAdmin creates the bootstrap admin account when ADMIN_USER and
// ADMIN_PASSWORD are configured. Safe to run on every startup.
func SeedAdmin(cfg config.Config) error {
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := config.DB.Where("username = ?", cfg.AdminUser).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := cfg.AdminEmail
	if email == "" {
		email = cfg.AdminUser + "@localhost"
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:      email,
		Username:   cfg.AdminUser,
		Password:   hashed,
		FullName:   "Administrator",
		IsActive:   true,
		IsVerified: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("admin account seeded", zap.String("username", cfg.AdminUser))
	return nil
}
