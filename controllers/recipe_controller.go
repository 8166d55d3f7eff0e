package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/realravitank/Niroge/config"
	"github.com/realravitank/Niroge/logger"
	"github.com/realravitank/Niroge/middlewares"
	"github.com/realravitank/Niroge/services"
	"github.com/realravitank/Niroge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// selectionTokenTTL bounds how long a viewed recipe can sit unconfirmed
// before the captured price/nutrition snapshot is considered stale.
const selectionTokenTTL = 30 * time.Minute

// SearchRecipes forwards the query to the catalog with the diet filter taken
// from the current user's profile.
func SearchRecipes(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter required"})
		return
	}

	userSvc := services.NewUserService(config.DB)
	user, _, err := userSvc.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}

	spoon := services.NewSpoonacularService()
	results, err := spoon.Search(c.Request.Context(), query, user.DietType)
	if err != nil {
		logger.Error("recipe search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe search is currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetRecipeDetail assembles the composite detail record and hands back a
// signed selection token. Nothing is persisted here — a later confirm
// request presents the token to actually log the meal.
func GetRecipeDetail(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	spoon := services.NewSpoonacularService()
	detail, err := spoon.Detail(c.Request.Context(), recipeID)
	if err != nil {
		logger.Error("recipe detail failed", zap.Int("recipe_id", recipeID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe detail is currently unavailable"})
		return
	}

	sel := utils.PendingSelection{
		RecipeID: detail.ID,
		Title:    detail.Title,
		Calories: detail.Calories,
		Protein:  detail.Protein,
		Fat:      detail.Fat,
		Carbs:    detail.Carbs,
		Price:    detail.Price,
	}
	token, err := utils.SignSelectionToken(userID, sel, selectionTokenTTL)
	if err != nil {
		logger.Error("selection token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not prepare selection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": detail, "selection_token": token})
}
