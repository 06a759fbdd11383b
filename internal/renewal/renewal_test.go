package renewal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gymdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeExpiryEveryDuration(t *testing.T) {
	start := date(2024, time.March, 10)
	for months := 1; months <= 12; months++ {
		t.Run(fmt.Sprintf("%d months", months), func(t *testing.T) {
			got := ComputeExpiry(start, months)

			wantMonth := (int(time.March)-1+months)%12 + 1
			wantYear := 2024
			if int(time.March)-1+months >= 12 {
				wantYear = 2025
			}
			assert.Equal(t, time.Month(wantMonth), got.Month())
			assert.Equal(t, wantYear, got.Year())
			assert.Equal(t, 10, got.Day())
		})
	}
}

func TestComputeExpiry(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain", date(2024, time.January, 15), 3, date(2024, time.April, 15)},
		{"year carry", date(2024, time.November, 20), 3, date(2025, time.February, 20)},
		{"twelve months", date(2024, time.May, 1), 12, date(2025, time.May, 1)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp to thirty days", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"no clamp needed", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"december plus one", date(2024, time.December, 31), 1, date(2025, time.January, 31)},
		{"time of day dropped", time.Date(2024, time.June, 5, 18, 45, 0, 0, time.UTC), 1, date(2024, time.July, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeExpiry(tt.start, tt.months))
		})
	}
}

func TestIsExpiringSoon(t *testing.T) {
	today := date(2024, time.April, 10)
	tests := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{"expires today", today, true},
		{"expires in five days", date(2024, time.April, 15), true},
		{"expires in six days", date(2024, time.April, 16), false},
		{"expired yesterday", date(2024, time.April, 9), false},
		{"far away", date(2024, time.December, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpiringSoon(tt.expiry, today, DefaultThresholdDays))
		})
	}
}

func TestIsExpiringSoonIgnoresClock(t *testing.T) {
	expiry := date(2024, time.April, 15)
	lateToday := time.Date(2024, time.April, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysRemaining(expiry, lateToday))
	assert.True(t, IsExpiringSoon(expiry, lateToday, 5))
}

func TestIsExpired(t *testing.T) {
	today := date(2024, time.April, 10)
	assert.True(t, IsExpired(date(2024, time.April, 9), today))
	assert.False(t, IsExpired(today, today))
	assert.Equal(t, -1, DaysRemaining(date(2024, time.April, 9), today))
}

func TestValidUptoUsesPlanStart(t *testing.T) {
	m := models.Member{DOJ: date(2024, time.January, 15), Duration: 3}
	assert.Equal(t, date(2024, time.April, 15), ValidUpto(m))

	started := date(2024, time.May, 1)
	m.PlanStarted = &started
	assert.Equal(t, date(2024, time.August, 1), ValidUpto(m))
}

func baseMember() models.Member {
	return models.Member{
		ID:           7,
		SerialNumber: 3,
		Name:         "Karan Mehta",
		Gender:       models.GenderMale,
		Age:          31,
		Phone:        "9000000001",
		Duration:     3,
		PaymentMode:  models.PaymentModeUPI,
		UTR:          "UTR123",
		Amount:       "3000",
		DOJ:          date(2024, time.January, 15),
		Version:      1,
	}
}

func TestApplyRenewalEndToEnd(t *testing.T) {
	m := baseMember()
	now := time.Date(2024, time.April, 16, 10, 0, 0, 0, time.UTC)

	require.Equal(t, date(2024, time.April, 15), ValidUpto(m))

	renewed, err := ApplyRenewal(m, Input{
		Amount:       "5500",
		PlanStarted:  date(2024, time.April, 16),
		PaymentMode:  models.PaymentModeCash,
		ReceiverName: "Raj",
		Duration:     6,
	}, now)
	require.NoError(t, err)

	require.Len(t, renewed.PreviousPlan, 1)
	archived := renewed.PreviousPlan[0]
	assert.Equal(t, "3000", archived.Amount)
	assert.Equal(t, "UTR123", archived.UTR)
	assert.Equal(t, models.PaymentModeUPI, archived.PaymentMode)
	assert.Equal(t, 3, archived.Duration)
	assert.Nil(t, archived.PlanStarted)
	assert.Equal(t, now, archived.ArchivedAt)

	assert.Equal(t, "5500", renewed.Amount)
	assert.Equal(t, models.PaymentModeCash, renewed.PaymentMode)
	assert.Equal(t, "Raj", renewed.ReceiverName)
	assert.Empty(t, renewed.UTR)
	assert.Equal(t, 6, renewed.Duration)
	assert.True(t, renewed.Verified)
	assert.Equal(t, date(2024, time.October, 16), ValidUpto(renewed))

	assert.Equal(t, m.ID, renewed.ID)
	assert.Equal(t, m.SerialNumber, renewed.SerialNumber)
	assert.Equal(t, m.DOJ, renewed.DOJ)
}

func TestApplyRenewalDoesNotMutateInput(t *testing.T) {
	m := baseMember()
	m.PreviousPlan = make([]models.PlanRecord, 1, 4)
	m.PreviousPlan[0] = models.PlanRecord{Amount: "1000", PaymentMode: models.PaymentModeCash, ReceiverName: "Old", Duration: 1}

	renewed, err := ApplyRenewal(m, Input{
		Amount:      "4000",
		PlanStarted: date(2024, time.April, 20),
		PaymentMode: models.PaymentModeUPI,
		UTR:         "UTR999",
		Duration:    4,
	}, time.Now())
	require.NoError(t, err)

	assert.Len(t, m.PreviousPlan, 1)
	assert.Equal(t, "3000", m.Amount)
	assert.Nil(t, m.PlanStarted)
	assert.False(t, m.Verified)
	assert.Len(t, renewed.PreviousPlan, 2)

	// appending to the original backing array must not leak into the result
	m.PreviousPlan = append(m.PreviousPlan, models.PlanRecord{Amount: "stray"})
	assert.Equal(t, "3000", renewed.PreviousPlan[1].Amount)
}

func TestApplyRenewalHistoryIsChronological(t *testing.T) {
	m := baseMember()
	start := date(2024, time.April, 16)
	const n = 5

	for i := 0; i < n; i++ {
		var err error
		m, err = ApplyRenewal(m, Input{
			Amount:      fmt.Sprintf("%d", 1000*(i+1)),
			PlanStarted: start.AddDate(0, i, 0),
			PaymentMode: models.PaymentModeUPI,
			UTR:         fmt.Sprintf("UTR-%d", i),
			Duration:    1,
		}, start.AddDate(0, i, 0))
		require.NoError(t, err)
	}

	require.Len(t, m.PreviousPlan, n)
	assert.Equal(t, "3000", m.PreviousPlan[0].Amount)
	for i := 1; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("%d", 1000*i), m.PreviousPlan[i].Amount)
		assert.True(t, m.PreviousPlan[i].ArchivedAt.After(m.PreviousPlan[i-1].ArchivedAt))
	}
	assert.Equal(t, fmt.Sprintf("%d", 1000*n), m.Amount)
}

func TestApplyRenewalRejectsBadInput(t *testing.T) {
	valid := Input{
		Amount:      "2000",
		PlanStarted: date(2024, time.April, 16),
		PaymentMode: models.PaymentModeUPI,
		UTR:         "UTR1",
		Duration:    2,
	}
	tests := []struct {
		name      string
		mutate    func(in *Input)
		wantField string
	}{
		{"duration zero", func(in *Input) { in.Duration = 0 }, "newDuration"},
		{"duration thirteen", func(in *Input) { in.Duration = 13 }, "newDuration"},
		{"bad amount", func(in *Input) { in.Amount = "twelve" }, "newAmount"},
		{"missing start", func(in *Input) { in.PlanStarted = time.Time{} }, "newPlanStartDate"},
		{"upi without utr", func(in *Input) { in.UTR = "" }, "newUtr"},
		{"cash without receiver", func(in *Input) { in.PaymentMode = models.PaymentModeCash }, "newReceiverName"},
		{"unknown mode", func(in *Input) { in.PaymentMode = "cheque" }, "newPaymentMode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := ApplyRenewal(baseMember(), in, time.Now())
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
		})
	}
}
