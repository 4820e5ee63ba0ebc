package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type NutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) *NutritionRepository {
	return &NutritionRepository{db: db}
}

func (r *NutritionRepository) Create(ctx context.Context, record *domain.Nutrition) (*domain.Nutrition, error) {
	row := toNutritionRow(record)
	row.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &userRow{}, "user_id", row.UserID, domain.ErrUserNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrNutritionNotFound)
	}
	return row.toDomain(), nil
}

func (r *NutritionRepository) FindByID(ctx context.Context, id int64) (*domain.Nutrition, error) {
	var row nutritionRow
	if err := r.db.WithContext(ctx).First(&row, "nutrition_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrNutritionNotFound)
	}
	return row.toDomain(), nil
}

func (r *NutritionRepository) List(ctx context.Context) ([]domain.Nutrition, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *NutritionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Nutrition, error) {
	var out []domain.Nutrition
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

func (r *NutritionRepository) list(q *gorm.DB) ([]domain.Nutrition, error) {
	var rows []nutritionRow
	if err := q.Order("nutrition_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Nutrition, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

func (r *NutritionRepository) Update(ctx context.Context, record *domain.Nutrition) (*domain.Nutrition, error) {
	row := toNutritionRow(record)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &nutritionRow{}, "nutrition_id", row.ID, domain.ErrNutritionNotFound); err != nil {
			return err
		}
		if err := requireRow(tx, &userRow{}, "user_id", row.UserID, domain.ErrUserNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return nil, translate(err, domain.ErrNutritionNotFound)
	}
	return row.toDomain(), nil
}

func (r *NutritionRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&nutritionRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNutritionNotFound
	}
	return nil
}
