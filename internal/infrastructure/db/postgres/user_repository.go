package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := toUserRow(user)
	row.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&userRow{}).Where("email = ?", row.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrEmailTaken
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "user_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("user_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toDomain())
	}
	return users, nil
}

// Update replaces the profile fields. The email must stay unique among the
// other accounts.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := toUserRow(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &userRow{}, "user_id", row.ID, domain.ErrUserNotFound); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&userRow{}).
			Where("email = ? AND user_id <> ?", row.Email, row.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrEmailTaken
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// Delete removes the user together with every workout, nutrition record and
// goal the user owns.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &userRow{}, "user_id", id, domain.ErrUserNotFound); err != nil {
			return err
		}
		for _, owned := range []any{&workoutRow{}, &nutritionRow{}, &goalRow{}} {
			if err := tx.Where("user_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&userRow{}, id).Error
	})
}
