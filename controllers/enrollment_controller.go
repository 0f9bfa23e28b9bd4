package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListEnrollments(c *gin.Context) {
	uid := c.GetUint("userID")

	enrollments, err := services.ListEnrollments(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func Enroll(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		ProgramID uint `json:"program_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := services.Enroll(uid, body.ProgramID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func UpdateEnrollmentProgress(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body struct {
		Day int `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := services.MarkDayComplete(uid, id, body.Day)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func Unenroll(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.Unenroll(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unenrolled"})
}
