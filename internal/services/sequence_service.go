package services

import (
	"errors"
	"fmt"

	"gymdesk-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const MemberSequence = "members"

// SeedFunc returns the starting value of a sequence that has no row yet.
type SeedFunc func(tx *gorm.DB) (int64, error)

// NextSequence increments the named counter and returns the new value. It must
// run inside the caller's transaction so the increment and the insert that
// consumes it commit together.
func NextSequence(tx *gorm.DB, name string, seed SeedFunc) (int64, error) {
	var seq models.Sequence
	err := tx.Where("name = ?", name).Take(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var start int64
		if seed != nil {
			if start, err = seed(tx); err != nil {
				return 0, err
			}
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Sequence{Name: name, Value: start}).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	result := tx.Model(&models.Sequence{}).Where("name = ?", name).
		Update("value", gorm.Expr("value + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("sequence %q was not incremented", name)
	}

	if err := tx.Where("name = ?", name).Take(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

// maxSerialNumber seeds the member sequence from rows created before the
// sequence table existed.
func maxSerialNumber(tx *gorm.DB) (int64, error) {
	var highest int64
	err := tx.Model(&models.Member{}).Select("COALESCE(MAX(serial_number), 0)").Scan(&highest).Error
	return highest, err
}

func nextSerialNumber(tx *gorm.DB) (int64, error) {
	return NextSequence(tx, MemberSequence, maxSerialNumber)
}
