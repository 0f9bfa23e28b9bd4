package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListVisualRhythms(c *gin.Context) {
	visuals, err := services.ListVisualRhythms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visuals)
}

func CreateVisualRhythm(c *gin.Context) {
	var body struct {
		Title       string `json:"title" binding:"required"`
		Category    string `json:"category"`
		ImageBase64 string `json:"image_base64" binding:"required"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visual, err := services.CreateVisualRhythm(body.Title, body.Category, body.ImageBase64, body.SortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, visual)
}

func DeleteVisualRhythm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteVisualRhythm(id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "visual deleted"})
}
