package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListMeditationSessions(c *gin.Context) {
	uid := c.GetUint("userID")

	sessions, err := services.ListMeditationSessions(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func CreateMeditationSession(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date            string `json:"date" binding:"required"`
		PracticeType    string `json:"practice_type"`
		DurationMinutes int    `json:"duration_minutes" binding:"required"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := services.CreateMeditationSession(uid, models.MeditationSession{
		Date:            body.Date,
		PracticeType:    body.PracticeType,
		DurationMinutes: body.DurationMinutes,
		Notes:           body.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func GetMeditationStats(c *gin.Context) {
	uid := c.GetUint("userID")

	today := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	stats, err := services.GetMeditationStats(uid, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func DeleteMeditationSession(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteMeditationSession(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}
