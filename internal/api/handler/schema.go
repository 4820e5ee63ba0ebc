package handler

import (
	"time"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// Request bodies. Handlers read the validated input directly; these types
// document the payloads for Swagger.

type registerRequest struct {
	Username string  `json:"username" example:"ann"`
	Email    string  `json:"email" example:"ann@example.com"`
	Password string  `json:"password" example:"secret1"`
	Height   float64 `json:"height" example:"165"`
	Weight   float64 `json:"weight" example:"60"`
}

type loginRequest struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret1"`
}

type updateProfileRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password,omitempty"`
	NewPassword string  `json:"newPassword,omitempty"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

type activityRequest struct {
	ActivityName string  `json:"activityName" example:"Running"`
	ActivityType string  `json:"activityType" example:"Cardio"`
	Description  *string `json:"description,omitempty"`
}

type workoutRequest struct {
	UserID         int64     `json:"userId"`
	ActivityID     int64     `json:"activityId"`
	Date           time.Time `json:"date"`
	Duration       int64     `json:"duration" example:"30"`
	CaloriesBurned int64     `json:"caloriesBurned" example:"300"`
	Notes          *string   `json:"notes,omitempty"`
}

type nutritionRequest struct {
	UserID           int64     `json:"userId"`
	Date             time.Time `json:"date"`
	MealType         string    `json:"mealType" example:"Lunch"`
	FoodItem         string    `json:"foodItem" example:"Salad"`
	CaloriesConsumed int64     `json:"caloriesConsumed"`
	Protein          int64     `json:"protein"`
	Carbohydrates    int64     `json:"carbohydrates"`
	Fats             int64     `json:"fats"`
}

type goalRequest struct {
	UserID          int64     `json:"userId"`
	GoalType        string    `json:"goalType" example:"weight"`
	GoalDescription string    `json:"goalDescription"`
	TargetValue     float64   `json:"targetValue"`
	Progress        float64   `json:"progress"`
	Achieved        bool      `json:"achieved"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
}

// Responses.

type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}
