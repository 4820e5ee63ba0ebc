package ports

import (
	"context"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// ActivityRepository persists the fitness activity catalogue.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.FitnessActivity) (*domain.FitnessActivity, error)
	FindByID(ctx context.Context, id int64) (*domain.FitnessActivity, error)
	List(ctx context.Context) ([]domain.FitnessActivity, error)
	Update(ctx context.Context, activity *domain.FitnessActivity) (*domain.FitnessActivity, error)
	// Delete returns domain.ErrActivityInUse while any workout references the
	// activity.
	Delete(ctx context.Context, id int64) error
}
