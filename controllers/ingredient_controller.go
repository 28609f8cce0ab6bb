package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcelonyc/nutrition-chat/services"
)

func ListIngredients(c *gin.Context) {
	ingredients, err := services.ListIngredients(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func CountIngredients(c *gin.Context) {
	count, err := services.CountIngredients(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// UploadIngredients replaces the caller's whole table with the rows of the
// posted CSV file. A bad file leaves the table untouched.
func UploadIngredients(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	rows, err := services.ParseIngredientsCSV(f)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := services.ReplaceIngredients(currentUserID(c), rows); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully uploaded %d ingredients", len(rows)),
		"count":   len(rows),
	})
}

func DownloadIngredients(c *gin.Context) {
	ingredients, err := services.ListIngredients(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteIngredientsCSV(&buf, ingredients); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ingredients.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
