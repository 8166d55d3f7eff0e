package services

import (
	"errors"

	"github.com/realravitank/Niroge/models"
	"github.com/realravitank/Niroge/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// AddMeal records a confirmed selection against the user. Logging the same
// recipe twice appends another row — each meal gets its own surrogate id.
func (s *MealService) AddMeal(userID uint, sel utils.PendingSelection) (*models.Meal, error) {
	meal := models.Meal{
		RecipeID: sel.RecipeID,
		Name:     sel.Title,
		Calories: sel.Calories,
		Protein:  sel.Protein,
		Fat:      sel.Fat,
		Carbs:    sel.Carbs,
		Price:    sel.Price,
		UserID:   userID,
	}

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes a meal owned by the user. A missing id is a no-op, so
// deletion is at-most-once and safely repeatable.
func (s *MealService) DeleteMeal(userID uint, mealID string) error {
	return s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

// RemainingCalories is the daily target minus everything logged. It is not
// clamped — a negative value is the signal that the target was exceeded.
func (s *MealService) RemainingCalories(userID uint) (int, error) {
	var target models.CalorieTarget
	if err := s.db.Where("user_id = ?", userID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	var consumed int64
	err := s.db.Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&consumed).Error
	if err != nil {
		return 0, err
	}

	return target.Calories - int(consumed), nil
}

// RemainingBudget is the monthly budget minus the summed price of logged
// meals. Users without a budget get nil.
func (s *MealService) RemainingBudget(userID uint) (*float64, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Budget == nil {
		return nil, nil
	}

	var spent float64
	err := s.db.Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&spent).Error
	if err != nil {
		return nil, err
	}

	remaining := *user.Budget - spent
	return &remaining, nil
}
