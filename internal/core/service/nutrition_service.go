package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type nutritionService struct {
	repo  ports.NutritionRepository
	idem  idempotency
	audit auditor
	log   zerolog.Logger
}

// NewNutritionService returns a NutritionService implementation.
func NewNutritionService(repo ports.NutritionRepository, idem ports.IdempotencyStore, audit ports.AuditRecorder, log zerolog.Logger) ports.NutritionService {
	return &nutritionService{
		repo:  repo,
		idem:  idempotency{store: idem, log: log},
		audit: newAuditor(audit),
		log:   log,
	}
}

func (s *nutritionService) List(ctx context.Context) ([]domain.Nutrition, error) {
	return s.repo.List(ctx)
}

func (s *nutritionService) Get(ctx context.Context, id int64) (*domain.Nutrition, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *nutritionService) ListByUser(ctx context.Context, userID int64) ([]domain.Nutrition, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *nutritionService) Create(ctx context.Context, in ports.NutritionInput) (*domain.Nutrition, bool, error) {
	if n, ok := replay(ctx, s.idem, domain.EntityNutrition, in.IdempotencyKey, s.repo.FindByID); ok {
		return n, true, nil
	}

	created, err := s.repo.Create(ctx, nutritionFromInput(in))
	if err != nil {
		return nil, false, fmt.Errorf("create nutrition: %w", err)
	}

	s.idem.remember(ctx, domain.EntityNutrition, in.IdempotencyKey, created.ID)
	s.audit.record(ctx, domain.ActionCreated, domain.EntityNutrition, created.ID, created.UserID)
	s.log.Info().Int64("nutrition_id", created.ID).Int64("user_id", created.UserID).Msg("nutrition record created")
	return created, false, nil
}

func (s *nutritionService) Update(ctx context.Context, id int64, in ports.NutritionInput) (*domain.Nutrition, error) {
	n := nutritionFromInput(in)
	n.ID = id

	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("update nutrition: %w", err)
	}
	s.audit.record(ctx, domain.ActionUpdated, domain.EntityNutrition, id, updated.UserID)
	return updated, nil
}

func (s *nutritionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete nutrition: %w", err)
	}
	s.audit.record(ctx, domain.ActionDeleted, domain.EntityNutrition, id, 0)
	s.log.Info().Int64("nutrition_id", id).Msg("nutrition record deleted")
	return nil
}

func nutritionFromInput(in ports.NutritionInput) *domain.Nutrition {
	return &domain.Nutrition{
		UserID:           in.UserID,
		Date:             in.Date,
		MealType:         in.MealType,
		FoodItem:         in.FoodItem,
		CaloriesConsumed: in.CaloriesConsumed,
		Protein:          in.Protein,
		Carbohydrates:    in.Carbohydrates,
		Fats:             in.Fats,
	}
}
