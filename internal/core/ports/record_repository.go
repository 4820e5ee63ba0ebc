package ports

import (
	"context"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// Repositories for records owned by a user. Create and Update check the
// referenced rows and write in one transaction, returning the matching
// *NotFound error from domain when a reference is missing. ListByUser returns
// domain.ErrUserNotFound for an unknown user.

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	FindByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error)
	// ListByActivity returns domain.ErrActivityNotFound for an unknown activity.
	ListByActivity(ctx context.Context, activityID int64) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, id int64) error
}

type NutritionRepository interface {
	Create(ctx context.Context, record *domain.Nutrition) (*domain.Nutrition, error)
	FindByID(ctx context.Context, id int64) (*domain.Nutrition, error)
	List(ctx context.Context) ([]domain.Nutrition, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Nutrition, error)
	Update(ctx context.Context, record *domain.Nutrition) (*domain.Nutrition, error)
	Delete(ctx context.Context, id int64) error
}

type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindByID(ctx context.Context, id int64) (*domain.Goal, error)
	List(ctx context.Context) ([]domain.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, id int64) error
}
