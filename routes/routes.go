package routes

import (
	"github.com/realravitank/Niroge/controllers"
	"github.com/realravitank/Niroge/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/weight", controllers.UpdateWeight)
		user.GET("/summary", controllers.GetSummary)
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.GET("/search", controllers.SearchRecipes)
		recipes.GET("/:id", controllers.GetRecipeDetail)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.AddMeal)
		meals.GET("", controllers.ListMeals)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	return r
}
