package ports

import (
	"context"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts user and returns it with its generated ID.
	// Returns domain.ErrEmailTaken when the email already exists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update overwrites every mutable column of an existing user.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the user together with the workouts, nutrition records
	// and goals it owns.
	Delete(ctx context.Context, id int64) error
}
