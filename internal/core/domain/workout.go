package domain

import "time"

// Workout is a single training session logged by a user.
type Workout struct {
	ID             int64     `json:"workoutId"`
	UserID         int64     `json:"userId"`
	ActivityID     int64     `json:"activityId"`
	Date           time.Time `json:"date"`
	Duration       int64     `json:"duration"`
	CaloriesBurned int64     `json:"caloriesBurned"`
	Notes          *string   `json:"notes"`
}
