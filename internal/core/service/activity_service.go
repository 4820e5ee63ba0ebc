package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type activityService struct {
	repo  ports.ActivityRepository
	idem  idempotency
	audit auditor
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, idem ports.IdempotencyStore, audit ports.AuditRecorder, log zerolog.Logger) ports.ActivityService {
	return &activityService{
		repo:  repo,
		idem:  idempotency{store: idem, log: log},
		audit: newAuditor(audit),
		log:   log,
	}
}

func (s *activityService) List(ctx context.Context) ([]domain.FitnessActivity, error) {
	return s.repo.List(ctx)
}

func (s *activityService) Get(ctx context.Context, id int64) (*domain.FitnessActivity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *activityService) Create(ctx context.Context, in ports.ActivityInput) (*domain.FitnessActivity, bool, error) {
	if a, ok := replay(ctx, s.idem, domain.EntityActivity, in.IdempotencyKey, s.repo.FindByID); ok {
		return a, true, nil
	}

	created, err := s.repo.Create(ctx, activityFromInput(in))
	if err != nil {
		return nil, false, fmt.Errorf("create fitness activity: %w", err)
	}

	s.idem.remember(ctx, domain.EntityActivity, in.IdempotencyKey, created.ID)
	s.audit.record(ctx, domain.ActionCreated, domain.EntityActivity, created.ID, 0)
	s.log.Info().Int64("activity_id", created.ID).Str("name", created.Name).Msg("fitness activity created")
	return created, false, nil
}

func (s *activityService) Update(ctx context.Context, id int64, in ports.ActivityInput) (*domain.FitnessActivity, error) {
	a := activityFromInput(in)
	a.ID = id

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update fitness activity: %w", err)
	}
	s.audit.record(ctx, domain.ActionUpdated, domain.EntityActivity, id, 0)
	return updated, nil
}

func (s *activityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete fitness activity: %w", err)
	}
	s.audit.record(ctx, domain.ActionDeleted, domain.EntityActivity, id, 0)
	s.log.Info().Int64("activity_id", id).Msg("fitness activity deleted")
	return nil
}

func activityFromInput(in ports.ActivityInput) *domain.FitnessActivity {
	return &domain.FitnessActivity{Name: in.Name, Type: in.Type, Description: in.Description}
}
