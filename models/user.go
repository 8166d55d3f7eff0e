package models

import (
	"gorm.io/gorm"
)

// User stores the account identity and goal profile. Height, Weight and
// GoalWeight are always kept in imperial units (inches/pounds); Unit only
// records how the user prefers to see them. Age is derived from the birth
// date once at signup — the birth date itself is never persisted.
type User struct {
	gorm.Model
	Email      string   `gorm:"uniqueIndex;not null" json:"email"`
	Password   string   `gorm:"not null" json:"-"`
	Name       string   `gorm:"not null" json:"name"`
	Sex        string   `gorm:"not null" json:"sex"`       // "m" | "f"
	Unit       string   `gorm:"not null" json:"unit"`      // "imp" | "met"
	Age        int      `gorm:"not null" json:"age"`
	Goal       string   `gorm:"not null" json:"goal"`      // "lose" | "maintain" | "gain"
	Activity   string   `gorm:"not null" json:"activity"`  // "sedentary" | "light" | "active"
	Rate       string   `gorm:"not null" json:"rate"`      // "slow" | "normal" | "fast"
	Height     float64  `gorm:"not null" json:"height"`
	Weight     float64  `gorm:"not null" json:"weight"`
	GoalWeight float64  `gorm:"not null" json:"goal_weight"`
	DietType   string   `gorm:"not null" json:"diet_type"` // "vegan" | "veg" | "gf" | "none"
	Budget     *float64 `json:"budget"`                    // optional monthly budget

	Meals []Meal `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
