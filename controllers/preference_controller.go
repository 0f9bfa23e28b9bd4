package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	prefs, err := services.GetPreferences(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func UpdatePreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for key, value := range body {
		if err := services.SetPreference(uid, key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "preferences updated"})
}
