package main

import (
	"go.uber.org/zap"

	"github.com/marcelonyc/nutrition-chat/config"
	"github.com/marcelonyc/nutrition-chat/logger"
	"github.com/marcelonyc/nutrition-chat/routes"
	"github.com/marcelonyc/nutrition-chat/services"
	"github.com/marcelonyc/nutrition-chat/utils"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	config.InitDB(cfg)
	utils.InitMailer(cfg)

	if err := services.SeedAdmin(cfg); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	r := routes.SetupRouter(cfg)
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
