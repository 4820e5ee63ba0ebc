package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every "record does not exist" error so callers can
// match the whole family with errors.Is.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrActivityNotFound  = fmt.Errorf("fitness activity %w", ErrNotFound)
	ErrWorkoutNotFound   = fmt.Errorf("workout %w", ErrNotFound)
	ErrNutritionNotFound = fmt.Errorf("nutrition record %w", ErrNotFound)
	ErrGoalNotFound      = fmt.Errorf("goal %w", ErrNotFound)
	// ErrReferenceNotFound is returned when a foreign key check fails at write
	// time and the specific missing record is not known.
	ErrReferenceNotFound = fmt.Errorf("referenced record %w", ErrNotFound)
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("incorrect old password")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrActivityInUse      = errors.New("fitness activity is referenced by workouts")
	ErrForbidden          = errors.New("access forbidden")
)
