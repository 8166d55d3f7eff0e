package services

import (
	"errors"
	"time"

	"github.com/realravitank/Niroge/models"
	"github.com/realravitank/Niroge/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterInput carries everything the signup flow collects. Weight, height
// and goal weight arrive in the submitted Unit; the birth date is used to
// derive Age and is then discarded.
type RegisterInput struct {
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Name       string   `json:"name" binding:"required"`
	Sex        string   `json:"sex" binding:"required,oneof=m f"`
	Unit       string   `json:"unit" binding:"required,oneof=imp met"`
	BirthYear  int      `json:"birth_year" binding:"required"`
	BirthMonth int      `json:"birth_month" binding:"required,min=1,max=12"`
	BirthDay   int      `json:"birth_day" binding:"required,min=1,max=31"`
	Goal       string   `json:"goal" binding:"required,oneof=lose maintain gain"`
	Activity   string   `json:"activity" binding:"required,oneof=sedentary light active"`
	Rate       string   `json:"rate" binding:"required,oneof=slow normal fast"`
	Height     float64  `json:"height" binding:"required,gt=0"`
	Weight     float64  `json:"weight" binding:"required,gt=0"`
	GoalWeight float64  `json:"goal_weight" binding:"required,gt=0"`
	DietType   string   `json:"diet_type" binding:"required,oneof=vegan veg gf none"`
	Budget     *float64 `json:"budget"`
}

// Register creates the account and its initial calorie target atomically.
// A unique-constraint hit on the email rolls the whole signup back and
// surfaces as ErrDuplicateEmail.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	dob := time.Date(input.BirthYear, time.Month(input.BirthMonth), input.BirthDay, 0, 0, 0, 0, time.UTC)

	user := models.User{
		Email:      input.Email,
		Password:   hashed,
		Name:       input.Name,
		Sex:        input.Sex,
		Unit:       input.Unit,
		Age:        utils.CalculateAge(dob),
		Goal:       input.Goal,
		Activity:   input.Activity,
		Rate:       input.Rate,
		Height:     utils.ToImperialHeight(input.Height, input.Unit),
		Weight:     utils.ToImperialWeight(input.Weight, input.Unit),
		GoalWeight: utils.ToImperialWeight(input.GoalWeight, input.Unit),
		DietType:   input.DietType,
		Budget:     input.Budget,
	}

	target, err := DailyCalories(user.Sex, user.Weight, user.Height, user.Age, user.Activity, user.Goal, user.Rate)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}
		return tx.Create(&models.CalorieTarget{UserID: user.ID, Calories: target}).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate looks the account up by email and verifies the password.
// Both failure modes return ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
