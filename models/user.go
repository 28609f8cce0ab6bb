package models

import "time"

// User is an account holder. Password stores the bcrypt hash; it and the
// reset-token fields never appear in API responses.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	FullName      string    `gorm:"size:255" json:"full_name"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	ResetToken    string    `gorm:"size:64;index" json:"-"`
	ResetTokenExp time.Time `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Chats       []ChatSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []Ingredient  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Settings    *UserSettings `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
