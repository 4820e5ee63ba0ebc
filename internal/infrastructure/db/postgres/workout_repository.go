package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	row := toWorkoutRow(workout)
	row.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireWorkoutRefs(tx, &row); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrWorkoutNotFound)
	}
	return row.toDomain(), nil
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var row workoutRow
	if err := r.db.WithContext(ctx).First(&row, "workout_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrWorkoutNotFound)
	}
	return row.toDomain(), nil
}

func (r *WorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *WorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	var out []domain.Workout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &userRow{}, "user_id", userID, domain.ErrUserNotFound); err != nil {
			return err
		}
		var err error
		out, err = r.list(tx.Where("user_id = ?", userID))
		return err
	})
	return out, err
}

func (r *WorkoutRepository) ListByActivity(ctx context.Context, activityID int64) ([]domain.Workout, error) {
	var out []domain.Workout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &activityRow{}, "activity_id", activityID, domain.ErrActivityNotFound); err != nil {
			return err
		}
		var err error
		out, err = r.list(tx.Where("activity_id = ?", activityID))
		return err
	})
	return out, err
}

func (r *WorkoutRepository) list(q *gorm.DB) ([]domain.Workout, error) {
	var rows []workoutRow
	if err := q.Order("workout_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Workout, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	row := toWorkoutRow(workout)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &workoutRow{}, "workout_id", row.ID, domain.ErrWorkoutNotFound); err != nil {
			return err
		}
		if err := requireWorkoutRefs(tx, &row); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrWorkoutNotFound)
	}
	return row.toDomain(), nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&workoutRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func requireWorkoutRefs(tx *gorm.DB, row *workoutRow) error {
	if err := requireRow(tx, &userRow{}, "user_id", row.UserID, domain.ErrUserNotFound); err != nil {
		return err
	}
	return requireRow(tx, &activityRow{}, "activity_id", row.ActivityID, domain.ErrActivityNotFound)
}
