package services

import (
	"testing"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNextSequenceSeedsFromExistingSerials(t *testing.T) {
	setupMemberDB(t)

	legacy := upiDraft("Legacy")
	legacy.SerialNumber = 41
	legacy.Version = 1
	require.NoError(t, database.DB.Create(&legacy).Error)

	var got []int64
	for i := 0; i < 2; i++ {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			n, err := nextSerialNumber(tx)
			got = append(got, n)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{42, 43}, got)

	var seq models.Sequence
	require.NoError(t, database.DB.First(&seq, "name = ?", MemberSequence).Error)
	assert.Equal(t, int64(43), seq.Value)
}

func TestNextSequenceRolledBackWithTransaction(t *testing.T) {
	setupMemberDB(t)

	_ = database.DB.Transaction(func(tx *gorm.DB) error {
		_, err := NextSequence(tx, "invoices", nil)
		require.NoError(t, err)
		return assert.AnError
	})

	var n int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = NextSequence(tx, "invoices", nil)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
