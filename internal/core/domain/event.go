package domain

import "time"

// Audit actions recorded for successful mutations.
const (
	ActionRegistered = "registered"
	ActionLoggedIn   = "logged_in"
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
)

// Entity names used in audit events, metrics labels and idempotency keys.
const (
	EntityUser      = "user"
	EntityActivity  = "fitness_activity"
	EntityWorkout   = "workout"
	EntityNutrition = "nutrition"
	EntityGoal      = "goal"
)

// AuditEvent records that a mutation happened. UserID is the authenticated
// caller when known, otherwise the record's owner.
type AuditEvent struct {
	ID         string
	Action     string
	Entity     string
	EntityID   int64
	UserID     int64
	OccurredAt time.Time
}
