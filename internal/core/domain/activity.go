package domain

// FitnessActivity is a catalogue entry that workouts point at.
type FitnessActivity struct {
	ID          int64   `json:"activityId"`
	Name        string  `json:"activityName"`
	Type        string  `json:"activityType"`
	Description *string `json:"description"`
}
