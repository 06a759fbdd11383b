package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenewMemberUPIToCash(t *testing.T) {
	setupMemberDB(t)
	ctx := context.Background()

	created, err := CreateMember(ctx, upiDraft("Karan"))
	require.NoError(t, err)
	require.Equal(t, date(2024, time.April, 15), renewal.ValidUpto(*created))

	renewed, err := RenewMember(ctx, created.ID, renewal.Input{
		Amount:       "5500",
		PlanStarted:  date(2024, time.April, 16),
		PaymentMode:  models.PaymentModeCash,
		ReceiverName: "Raj",
		Duration:     6,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, renewed.Version)

	got, err := GetMember(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.PreviousPlan, 1)
	archived := got.PreviousPlan[0]
	assert.Equal(t, "3000", archived.Amount)
	assert.Equal(t, "UTR123", archived.UTR)
	assert.Equal(t, models.PaymentModeUPI, archived.PaymentMode)
	assert.Equal(t, 3, archived.Duration)
	require.NotNil(t, archived.PlanStarted)
	assert.True(t, archived.PlanStarted.Equal(date(2024, time.January, 15)))

	assert.Equal(t, "5500", got.Amount)
	assert.Equal(t, models.PaymentModeCash, got.PaymentMode)
	assert.Equal(t, "Raj", got.ReceiverName)
	assert.Empty(t, got.UTR)
	assert.Equal(t, 6, got.Duration)
	assert.True(t, got.Verified)
	assert.Equal(t, date(2024, time.October, 16), renewal.ValidUpto(got))
	assert.Equal(t, created.SerialNumber, got.SerialNumber)
}

func TestRenewMemberRepeatedly(t *testing.T) {
	setupMemberDB(t)
	ctx := context.Background()

	created, err := CreateMember(ctx, upiDraft("Karan"))
	require.NoError(t, err)

	const n = 4
	for i := 0; i < n; i++ {
		_, err := RenewMember(ctx, created.ID, renewal.Input{
			Amount:      fmt.Sprintf("%d", 1000*(i+1)),
			PlanStarted: date(2024, time.April, 16).AddDate(0, i, 0),
			PaymentMode: models.PaymentModeUPI,
			UTR:         fmt.Sprintf("UTR-%d", i),
			Duration:    1,
		}, nil)
		require.NoError(t, err)
	}

	got, err := GetMember(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.PreviousPlan, n)
	assert.Equal(t, "3000", got.PreviousPlan[0].Amount)
	for i := 1; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("%d", 1000*i), got.PreviousPlan[i].Amount)
		assert.Equal(t, fmt.Sprintf("UTR-%d", i-1), got.PreviousPlan[i].UTR)
	}
	assert.Equal(t, n+1, got.Version)
}

func TestRenewMemberInvalidInputLeavesRecord(t *testing.T) {
	setupMemberDB(t)
	ctx := context.Background()

	created, err := CreateMember(ctx, upiDraft("Karan"))
	require.NoError(t, err)

	_, err = RenewMember(ctx, created.ID, renewal.Input{
		Amount:      "abc",
		PlanStarted: date(2024, time.April, 16),
		PaymentMode: models.PaymentModeUPI,
		UTR:         "UTR9",
		Duration:    3,
	}, nil)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))

	got, err := GetMember(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PreviousPlan)
	assert.Equal(t, "3000", got.Amount)
	assert.Equal(t, 1, got.Version)
}

func TestRenewMemberConflictAndNotFound(t *testing.T) {
	setupMemberDB(t)
	ctx := context.Background()

	created, err := CreateMember(ctx, upiDraft("Karan"))
	require.NoError(t, err)

	in := renewal.Input{
		Amount:      "4000",
		PlanStarted: date(2024, time.April, 16),
		PaymentMode: models.PaymentModeUPI,
		UTR:         "UTR9",
		Duration:    2,
	}
	_, err = RenewMember(ctx, created.ID, in, ptr(7))
	assert.ErrorIs(t, err, ErrOptimisticLock)

	_, err = RenewMember(ctx, 999, in, nil)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
