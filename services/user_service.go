package services

import (
	"errors"

	"github.com/realravitank/Niroge/models"
	"github.com/realravitank/Niroge/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpdateProfileInput covers the mutable profile fields. Weight and goal
// weight are interpreted in Unit and converted before storage.
type UpdateProfileInput struct {
	Email      string   `json:"email" binding:"required,email"`
	Goal       string   `json:"goal" binding:"required,oneof=lose maintain gain"`
	Activity   string   `json:"activity" binding:"required,oneof=sedentary light active"`
	Rate       string   `json:"rate" binding:"required,oneof=slow normal fast"`
	DietType   string   `json:"diet_type" binding:"required,oneof=vegan veg gf none"`
	Unit       string   `json:"unit" binding:"required,oneof=imp met"`
	Weight     float64  `json:"weight" binding:"required,gt=0"`
	GoalWeight float64  `json:"goal_weight" binding:"required,gt=0"`
	Budget     *float64 `json:"budget"`
}

// UpdateProfile mutates the profile and recomputes the calorie target in the
// same transaction, so the target can never go stale against the profile.
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.Email = input.Email
		user.Goal = input.Goal
		user.Activity = input.Activity
		user.Rate = input.Rate
		user.DietType = input.DietType
		user.Unit = input.Unit
		user.Weight = utils.ToImperialWeight(input.Weight, input.Unit)
		user.GoalWeight = utils.ToImperialWeight(input.GoalWeight, input.Unit)
		user.Budget = input.Budget

		if err := tx.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}

		return s.overwriteTarget(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateWeight is the narrow mutation behind the quick weigh-in flow: new
// weight in, calorie target recomputed, nothing else touched.
func (s *UserService) UpdateWeight(userID uint, weight float64, unit string) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.Weight = utils.ToImperialWeight(weight, unit)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		return s.overwriteTarget(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) overwriteTarget(tx *gorm.DB, user *models.User) error {
	target, err := DailyCalories(user.Sex, user.Weight, user.Height, user.Age, user.Activity, user.Goal, user.Rate)
	if err != nil {
		return err
	}
	return tx.Model(&models.CalorieTarget{}).
		Where("user_id = ?", user.ID).
		Update("calories", target).Error
}

// GetProfile returns the user together with the current daily target.
func (s *UserService) GetProfile(userID uint) (*models.User, *models.CalorieTarget, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	var target models.CalorieTarget
	if err := s.db.Where("user_id = ?", userID).First(&target).Error; err != nil {
		return nil, nil, err
	}

	return &user, &target, nil
}
