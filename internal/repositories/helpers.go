package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOne returns nil, nil when no row matches.
func findOne[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where(query, args...).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// deleteByID soft-deletes (or deletes, for models without DeletedAt) and
// reports whether a row was affected.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var model T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// toggleColumn flips a boolean column in one statement and returns the updated row.
func toggleColumn[T any](ctx context.Context, db *gorm.DB, id uuid.UUID, column string) (*T, error) {
	var out T
	res := db.WithContext(ctx).
		Model(&out).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update(column, gorm.Expr("NOT "+column))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}
