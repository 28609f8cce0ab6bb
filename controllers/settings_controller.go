package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcelonyc/nutrition-chat/services"
)

type SettingsInput struct {
	MacroEnabled bool    `json:"macro_enabled"`
	ProteinPct   float64 `json:"protein_pct"`
	CarbsPct     float64 `json:"carbs_pct"`
	FatPct       float64 `json:"fat_pct"`
}

func GetSettings(c *gin.Context) {
	settings, err := services.GetSettings(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.UpsertSettings(currentUserID(c), input.MacroEnabled, input.ProteinPct, input.CarbsPct, input.FatPct)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
