package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListActivities(c *gin.Context) {
	uid := c.GetUint("userID")

	activities, err := services.ListActivities(uid, c.Query("date"), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func RecordActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date         string `json:"date" binding:"required"`
		ActivityType string `json:"activity_type" binding:"required"`
		Value        int    `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := services.RecordActivity(uid, body.Date, body.ActivityType, body.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func GetActivitySummary(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	if err := services.ValidateDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := services.ActivitySummaryForDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func DeleteActivity(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteActivity(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}
