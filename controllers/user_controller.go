package controllers

import (
	"errors"
	"net/http"

	"github.com/realravitank/Niroge/config"
	"github.com/realravitank/Niroge/logger"
	"github.com/realravitank/Niroge/middlewares"
	"github.com/realravitank/Niroge/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetProfile(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	userSvc := services.NewUserService(config.DB)
	user, target, err := userSvc.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "daily_calories": target.Calories})
}

func UpdateProfile(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input services.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.UpdateProfile(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		default:
			logger.Error("profile update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateWeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Unit   string  `json:"unit" binding:"required,oneof=imp met"`
}

func UpdateWeight(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input UpdateWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.UpdateWeight(userID, input.Weight, input.Unit)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("weight update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update weight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetSummary reports the remaining daily calories and, when the user set a
// budget, the remaining monthly spend. Calories may be negative once the
// target has been exceeded.
func GetSummary(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	mealSvc := services.NewMealService(config.DB)
	remaining, err := mealSvc.RemainingCalories(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("calorie summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute summary"})
		return
	}

	budget, err := mealSvc.RemainingBudget(userID)
	if err != nil {
		logger.Error("budget summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute summary"})
		return
	}

	resp := gin.H{"remaining_calories": remaining}
	if budget != nil {
		resp["remaining_budget"] = *budget
	}
	c.JSON(http.StatusOK, resp)
}
