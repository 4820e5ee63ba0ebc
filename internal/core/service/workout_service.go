package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type workoutService struct {
	repo  ports.WorkoutRepository
	idem  idempotency
	audit auditor
	log   zerolog.Logger
}

// NewWorkoutService returns a WorkoutService implementation.
func NewWorkoutService(repo ports.WorkoutRepository, idem ports.IdempotencyStore, audit ports.AuditRecorder, log zerolog.Logger) ports.WorkoutService {
	return &workoutService{
		repo:  repo,
		idem:  idempotency{store: idem, log: log},
		audit: newAuditor(audit),
		log:   log,
	}
}

func (s *workoutService) List(ctx context.Context) ([]domain.Workout, error) {
	return s.repo.List(ctx)
}

func (s *workoutService) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *workoutService) ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *workoutService) ListByActivity(ctx context.Context, activityID int64) ([]domain.Workout, error) {
	return s.repo.ListByActivity(ctx, activityID)
}

func (s *workoutService) Create(ctx context.Context, in ports.WorkoutInput) (*domain.Workout, bool, error) {
	if w, ok := replay(ctx, s.idem, domain.EntityWorkout, in.IdempotencyKey, s.repo.FindByID); ok {
		return w, true, nil
	}

	created, err := s.repo.Create(ctx, workoutFromInput(in))
	if err != nil {
		return nil, false, fmt.Errorf("create workout: %w", err)
	}

	s.idem.remember(ctx, domain.EntityWorkout, in.IdempotencyKey, created.ID)
	s.audit.record(ctx, domain.ActionCreated, domain.EntityWorkout, created.ID, created.UserID)
	s.log.Info().
		Int64("workout_id", created.ID).
		Int64("user_id", created.UserID).
		Int64("activity_id", created.ActivityID).
		Msg("workout created")
	return created, false, nil
}

func (s *workoutService) Update(ctx context.Context, id int64, in ports.WorkoutInput) (*domain.Workout, error) {
	w := workoutFromInput(in)
	w.ID = id

	updated, err := s.repo.Update(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	s.audit.record(ctx, domain.ActionUpdated, domain.EntityWorkout, id, updated.UserID)
	return updated, nil
}

func (s *workoutService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	s.audit.record(ctx, domain.ActionDeleted, domain.EntityWorkout, id, 0)
	s.log.Info().Int64("workout_id", id).Msg("workout deleted")
	return nil
}

func workoutFromInput(in ports.WorkoutInput) *domain.Workout {
	return &domain.Workout{
		UserID:         in.UserID,
		ActivityID:     in.ActivityID,
		Date:           in.Date,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}
}
