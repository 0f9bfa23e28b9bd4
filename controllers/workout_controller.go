package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListWorkouts(c *gin.Context) {
	uid := c.GetUint("userID")

	workouts, err := services.ListWorkouts(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func GetWorkout(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	workout, err := services.GetWorkout(uid, id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workout)
}

type workoutExerciseInput struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func CreateWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date            string                 `json:"date" binding:"required"`
		WorkoutType     string                 `json:"workout_type"`
		Name            string                 `json:"name" binding:"required"`
		DurationMinutes int                    `json:"duration_minutes"`
		CaloriesBurned  *int                   `json:"calories_burned"`
		Notes           string                 `json:"notes"`
		Exercises       []workoutExerciseInput `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout := models.Workout{
		Date:            body.Date,
		WorkoutType:     body.WorkoutType,
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		CaloriesBurned:  body.CaloriesBurned,
		Notes:           body.Notes,
	}
	for _, e := range body.Exercises {
		workout.Exercises = append(workout.Exercises, models.WorkoutExercise{
			Name:   e.Name,
			Sets:   e.Sets,
			Reps:   e.Reps,
			Weight: e.Weight,
		})
	}

	created, err := services.CreateWorkout(uid, workout)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func DeleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteWorkout(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}
