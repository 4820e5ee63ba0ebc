package domain

import "time"

// Goal tracks progress towards a user-defined target between two dates.
type Goal struct {
	ID              int64     `json:"goalId"`
	UserID          int64     `json:"userId"`
	GoalType        string    `json:"goalType"`
	GoalDescription string    `json:"goalDescription"`
	TargetValue     float64   `json:"targetValue"`
	Progress        float64   `json:"progress"`
	Achieved        bool      `json:"achieved"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
}
