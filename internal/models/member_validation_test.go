package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMember() Member {
	return Member{
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Gender:      GenderFemale,
		Age:         29,
		Phone:       "9876543210",
		Duration:    3,
		PaymentMode: PaymentModeUPI,
		UTR:         "UTR123",
		Amount:      "2500",
		DOJ:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	var fields []string
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestValidateMember(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(m *Member)
		wantFields []string
	}{
		{name: "valid upi member", mutate: func(m *Member) {}},
		{name: "valid cash member", mutate: func(m *Member) {
			m.PaymentMode = PaymentModeCash
			m.UTR = ""
			m.ReceiverName = "Raj"
		}},
		{name: "email is optional", mutate: func(m *Member) { m.Email = "" }},
		{name: "decimal amount", mutate: func(m *Member) { m.Amount = "999.50" }},
		{name: "upi without utr", mutate: func(m *Member) { m.UTR = "  " }, wantFields: []string{"utr"}},
		{name: "cash without receiver", mutate: func(m *Member) {
			m.PaymentMode = PaymentModeCash
		}, wantFields: []string{"receiverName"}},
		{name: "duration zero", mutate: func(m *Member) { m.Duration = 0 }, wantFields: []string{"duration"}},
		{name: "duration thirteen", mutate: func(m *Member) { m.Duration = 13 }, wantFields: []string{"duration"}},
		{name: "unknown gender", mutate: func(m *Member) { m.Gender = "robot" }, wantFields: []string{"gender"}},
		{name: "unknown payment mode", mutate: func(m *Member) { m.PaymentMode = "card" }, wantFields: []string{"paymentMode"}},
		{name: "bad email", mutate: func(m *Member) { m.Email = "not-an-email" }, wantFields: []string{"email"}},
		{name: "non numeric amount", mutate: func(m *Member) { m.Amount = "abc" }, wantFields: []string{"amount"}},
		{name: "negative amount", mutate: func(m *Member) { m.Amount = "-10" }, wantFields: []string{"amount"}},
		{name: "missing name and phone", mutate: func(m *Member) {
			m.Name = ""
			m.Phone = ""
		}, wantFields: []string{"name", "phone"}},
		{name: "missing joining date", mutate: func(m *Member) { m.DOJ = time.Time{} }, wantFields: []string{"DOJ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMember()
			tt.mutate(&m)

			err := ValidateMember(&m)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	m := validMember()
	m.UTR = ""

	err := ValidateMember(&m)
	assert.EqualError(t, err, "validation failed: utr: utr is required when paymentMode is upi")
}

func TestNormalizePayment(t *testing.T) {
	m := validMember()
	m.ReceiverName = "Raj"
	m.NormalizePayment()
	assert.Equal(t, "UTR123", m.UTR)
	assert.Empty(t, m.ReceiverName)
	assert.Equal(t, "UTR123", m.PaymentReference())

	m.PaymentMode = PaymentModeCash
	m.ReceiverName = "Raj"
	m.NormalizePayment()
	assert.Empty(t, m.UTR)
	assert.Equal(t, "Raj", m.PaymentReference())
}

func TestPlanStartFallsBackToDOJ(t *testing.T) {
	m := validMember()
	assert.Equal(t, m.DOJ, m.PlanStart())

	started := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	m.PlanStarted = &started
	assert.Equal(t, started, m.PlanStart())
}

func TestCurrentPlanCopiesPlanStart(t *testing.T) {
	m := validMember()
	started := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	m.PlanStarted = &started
	archivedAt := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

	rec := m.CurrentPlan(archivedAt)
	started = started.AddDate(1, 0, 0)

	assert.Equal(t, "2500", rec.Amount)
	assert.Equal(t, PaymentModeUPI, rec.PaymentMode)
	assert.Equal(t, 3, rec.Duration)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *rec.PlanStarted)
	assert.Equal(t, archivedAt, rec.ArchivedAt)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 1500.25 ")
	require.NoError(t, err)
	assert.Equal(t, "1500.25", d.String())

	_, err = ParseAmount("")
	assert.Error(t, err)
}
