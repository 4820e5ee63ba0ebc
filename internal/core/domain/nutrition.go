package domain

import "time"

// Nutrition is one logged food item within a meal.
type Nutrition struct {
	ID               int64     `json:"nutritionId"`
	UserID           int64     `json:"userId"`
	Date             time.Time `json:"date"`
	MealType         string    `json:"mealType"`
	FoodItem         string    `json:"foodItem"`
	CaloriesConsumed int64     `json:"caloriesConsumed"`
	Protein          int64     `json:"protein"`
	Carbohydrates    int64     `json:"carbohydrates"`
	Fats             int64     `json:"fats"`
}
