package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcelonyc/nutrition-chat/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PublicConfig reports which model the backend talks to, for display in the UI.
func PublicConfig(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"model":    cfg.OllamaModel,
			"api_base": cfg.OllamaAPIBase,
		})
	}
}
