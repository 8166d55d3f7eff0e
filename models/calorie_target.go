package models

import (
	"gorm.io/gorm"
)

// CalorieTarget holds the computed daily calorie budget, one row per user.
// It is created in the same transaction as the User at signup and overwritten
// on every profile or weight edit, so it always reflects the current profile.
type CalorieTarget struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories int  `gorm:"not null" json:"calories"`
}
