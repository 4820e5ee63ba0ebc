package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type goalService struct {
	repo  ports.GoalRepository
	idem  idempotency
	audit auditor
	log   zerolog.Logger
}

// NewGoalService returns a GoalService implementation.
func NewGoalService(repo ports.GoalRepository, idem ports.IdempotencyStore, audit ports.AuditRecorder, log zerolog.Logger) ports.GoalService {
	return &goalService{
		repo:  repo,
		idem:  idempotency{store: idem, log: log},
		audit: newAuditor(audit),
		log:   log,
	}
}

func (s *goalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.repo.List(ctx)
}

func (s *goalService) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *goalService) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *goalService) Create(ctx context.Context, in ports.GoalInput) (*domain.Goal, bool, error) {
	if g, ok := replay(ctx, s.idem, domain.EntityGoal, in.IdempotencyKey, s.repo.FindByID); ok {
		return g, true, nil
	}

	created, err := s.repo.Create(ctx, goalFromInput(in))
	if err != nil {
		return nil, false, fmt.Errorf("create goal: %w", err)
	}

	s.idem.remember(ctx, domain.EntityGoal, in.IdempotencyKey, created.ID)
	s.audit.record(ctx, domain.ActionCreated, domain.EntityGoal, created.ID, created.UserID)
	s.log.Info().Int64("goal_id", created.ID).Int64("user_id", created.UserID).Str("goal_type", created.GoalType).Msg("goal created")
	return created, false, nil
}

func (s *goalService) Update(ctx context.Context, id int64, in ports.GoalInput) (*domain.Goal, error) {
	g := goalFromInput(in)
	g.ID = id

	updated, err := s.repo.Update(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	s.audit.record(ctx, domain.ActionUpdated, domain.EntityGoal, id, updated.UserID)
	if updated.Achieved {
		s.log.Info().Int64("goal_id", id).Int64("user_id", updated.UserID).Msg("goal achieved")
	}
	return updated, nil
}

func (s *goalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	s.audit.record(ctx, domain.ActionDeleted, domain.EntityGoal, id, 0)
	s.log.Info().Int64("goal_id", id).Msg("goal deleted")
	return nil
}

func goalFromInput(in ports.GoalInput) *domain.Goal {
	return &domain.Goal{
		UserID:          in.UserID,
		GoalType:        in.GoalType,
		GoalDescription: in.GoalDescription,
		TargetValue:     in.TargetValue,
		Progress:        in.Progress,
		Achieved:        in.Achieved,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
	}
}
