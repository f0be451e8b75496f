package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports that the row changed after it was read.
	ErrConflict = errors.New("record was modified concurrently")
)

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

// updateVersion writes values to the row only while it still carries the
// version it was read at.
func updateVersion(tx *gorm.DB, model interface{}, id uuid.UUID, version int, values map[string]interface{}) error {
	result := tx.Model(model).Where("id = ? AND version = ?", id, version).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrConflict
}
