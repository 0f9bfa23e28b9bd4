package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListPrograms(c *gin.Context) {
	programs, err := services.ListPrograms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, programs)
}

func GetProgram(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	program, err := services.GetProgram(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, program)
}

func CreateProgram(c *gin.Context) {
	var input services.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.CreateProgram(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, program)
}

func UpdateProgram(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.UpdateProgram(id, input)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, program)
}

func DeleteProgram(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteProgram(id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "program deleted"})
}
