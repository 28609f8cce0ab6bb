package models

import "time"

// UserSettings holds per-user prompt preferences. At most one row per user,
// created lazily on the first write. Percentages only matter while
// MacroEnabled is true.
type UserSettings struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	MacroEnabled bool      `json:"macro_enabled"`
	ProteinPct   float64   `json:"protein_pct"`
	CarbsPct     float64   `json:"carbs_pct"`
	FatPct       float64   `json:"fat_pct"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
