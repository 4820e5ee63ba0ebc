package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// translate maps gorm sentinels to domain errors. notFound is returned for a
// missing row; foreign key violations mean a referenced row vanished between
// the existence check and the write.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrReferenceNotFound
	default:
		return err
	}
}

// requireRow returns notFound unless a row with the given primary key exists.
func requireRow(tx *gorm.DB, model any, column string, id int64, notFound error) error {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
