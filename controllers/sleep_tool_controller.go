package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListSleepTools(c *gin.Context) {
	tools, err := services.ListSleepTools()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tools)
}

func GetSleepTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	tool, err := services.GetSleepTool(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tool)
}

func CreateSleepTool(c *gin.Context) {
	var input services.SleepToolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tool, err := services.CreateSleepTool(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tool)
}

func UpdateSleepTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.SleepToolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tool, err := services.UpdateSleepTool(id, input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tool)
}

func DeleteSleepTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteSleepTool(id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tool deleted"})
}
