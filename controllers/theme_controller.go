package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListThemes(c *gin.Context) {
	themes, err := services.ListThemes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, themes)
}

// GetCurrentTheme resolves the palette for the current time of day.
func GetCurrentTheme(c *gin.Context) {
	theme, err := services.CurrentTheme(time.Now())
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "no themes configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, theme)
}

func CreateTheme(c *gin.Context) {
	var body struct {
		Name       string `json:"name" binding:"required"`
		TimeOfDay  string `json:"time_of_day"`
		Primary    string `json:"primary"`
		Accent     string `json:"accent"`
		Background string `json:"background"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := services.CreateTheme(models.Theme{
		Name:       body.Name,
		TimeOfDay:  body.TimeOfDay,
		Primary:    body.Primary,
		Accent:     body.Accent,
		Background: body.Background,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, theme)
}
