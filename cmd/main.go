package main

import (
	"os"

	"github.com/realravitank/Niroge/config"
	"github.com/realravitank/Niroge/logger"
	"github.com/realravitank/Niroge/routes"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
