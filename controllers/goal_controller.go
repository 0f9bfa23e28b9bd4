package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goals, err := services.ListGoals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		GoalType    string `json:"goal_type" binding:"required"`
		TargetValue int    `json:"target_value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateGoal(uid, body.GoalType, body.TargetValue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func UpdateGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body struct {
		TargetValue *int  `json:"target_value"`
		IsActive    *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoal(uid, id, body.TargetValue, body.IsActive)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func GetGoalsProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	progress, err := services.GoalsProgressForDate(uid, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "goals_progress": progress})
}

func DeleteGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteGoal(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
