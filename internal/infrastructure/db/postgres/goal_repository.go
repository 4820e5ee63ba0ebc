package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	row := toGoalRow(goal)
	row.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &userRow{}, "user_id", row.UserID, domain.ErrUserNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrGoalNotFound)
	}
	return row.toDomain(), nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id int64) (*domain.Goal, error) {
	var row goalRow
	if err := r.db.WithContext(ctx).First(&row, "goal_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrGoalNotFound)
	}
	return row.toDomain(), nil
}

func (r *GoalRepository) List(ctx context.Context) ([]domain.Goal, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	var out []domain.Goal
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

func (r *GoalRepository) list(q *gorm.DB) ([]domain.Goal, error) {
	var rows []goalRow
	if err := q.Order("goal_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Goal, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	row := toGoalRow(goal)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &goalRow{}, "goal_id", row.ID, domain.ErrGoalNotFound); err != nil {
			return err
		}
		if err := requireRow(tx, &userRow{}, "user_id", row.UserID, domain.ErrUserNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrGoalNotFound)
	}
	return row.toDomain(), nil
}

func (r *GoalRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&goalRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
