package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListNutritionLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := services.ListNutritionLogs(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func CreateNutritionLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date     string `json:"date" binding:"required"`
		MealType string `json:"meal_type"`
		FoodName string `json:"food_name" binding:"required"`
		Calories int    `json:"calories"`
		Protein  int    `json:"protein"`
		Carbs    int    `json:"carbs"`
		Fats     int    `json:"fats"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateNutritionLog(uid, models.NutritionLog{
		Date:     body.Date,
		MealType: body.MealType,
		FoodName: body.FoodName,
		Calories: body.Calories,
		Protein:  body.Protein,
		Carbs:    body.Carbs,
		Fats:     body.Fats,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func GetNutritionSummary(c *gin.Context) {
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

	summary, err := services.NutritionSummaryForDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func DeleteNutritionLog(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteNutritionLog(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log deleted"})
}
