package models

import "gorm.io/gorm"

type NutritionLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	MealType string `gorm:"size:32"`                // "breakfast" | "lunch" | ...
	FoodName string `gorm:"not null"`
	Calories int
	Protein  int // g
	Carbs    int // g
	Fats     int // g
}
