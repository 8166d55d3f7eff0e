package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged consumption event. The primary key is a locally
// generated surrogate id; the external catalog's recipe id lives in RecipeID,
// so two users (or the same user twice) can log the same recipe without
// colliding. Nutrition fields are stored as the catalog reports them —
// protein/fat/carbs arrive as display strings like "19g".
type Meal struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID  int       `gorm:"index;not null" json:"recipe_id"`
	Name      string    `gorm:"not null" json:"name"`
	Calories  int       `gorm:"not null" json:"calories"`
	Protein   string    `json:"protein"`
	Fat       string    `json:"fat"`
	Carbs     string    `json:"carbs"`
	Price     float64   `json:"price"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
