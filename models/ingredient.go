package models

import "time"

// Ingredient is one row of a user's nutrition table. All values are per gram.
// Names are only scoped per user; two users may both have "butter".
type Ingredient struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	CaloriesPerGram float64   `gorm:"not null" json:"calories_per_gram"`
	ProteinPerGram  float64   `gorm:"not null" json:"protein_per_gram"`
	FatPerGram      float64   `gorm:"not null" json:"fat_per_gram"`
	CarbsPerGram    float64   `gorm:"not null" json:"carbs_per_gram"`
	CreatedAt       time.Time `json:"created_at"`
}
