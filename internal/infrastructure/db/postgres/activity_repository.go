package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.FitnessActivity) (*domain.FitnessActivity, error) {
	row := toActivityRow(activity)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id int64) (*domain.FitnessActivity, error) {
	var row activityRow
	if err := r.db.WithContext(ctx).First(&row, "activity_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrActivityNotFound)
	}
	return row.toDomain(), nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.FitnessActivity, error) {
	var rows []activityRow
	if err := r.db.WithContext(ctx).Order("activity_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.FitnessActivity, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain.FitnessActivity) (*domain.FitnessActivity, error) {
	row := toActivityRow(activity)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &activityRow{}, "activity_id", row.ID, domain.ErrActivityNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &activityRow{}, "activity_id", id, domain.ErrActivityNotFound); err != nil {
			return err
		}
		var refs int64
		if err := tx.Model(&workoutRow{}).Where("activity_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrActivityInUse
		}
		return tx.Delete(&activityRow{}, id).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrActivityInUse
	}
	return err
}
