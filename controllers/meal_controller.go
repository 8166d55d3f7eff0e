package controllers

import (
	"errors"
	"net/http"

	"github.com/realravitank/Niroge/config"
	"github.com/realravitank/Niroge/logger"
	"github.com/realravitank/Niroge/middlewares"
	"github.com/realravitank/Niroge/services"
	"github.com/realravitank/Niroge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddMealInput struct {
	SelectionToken string `json:"selection_token" binding:"required"`
}

// AddMeal is the confirm half of the two-step flow: it verifies the
// selection token issued by GetRecipeDetail and logs the meal from the
// values captured at view time.
func AddMeal(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := utils.ParseSelectionToken(input.SelectionToken, userID)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidSelectionToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired selection token"})
			return
		}
		logger.Error("selection token parse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add meal"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.AddMeal(userID, *sel)
	if err != nil {
		logger.Error("meal insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func ListMeals(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	mealSvc := services.NewMealService(config.DB)
	meals, err := mealSvc.ListMeals(userID)
	if err != nil {
		logger.Error("meal listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// DeleteMeal removes one logged meal. Deleting an id that no longer exists
// succeeds — the operation is at-most-once, never an error.
func DeleteMeal(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID := c.Param("id")

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.DeleteMeal(userID, mealID); err != nil {
		logger.Error("meal delete failed", zap.String("meal_id", mealID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete meal"})
		return
	}

	c.Status(http.StatusNoContent)
}
