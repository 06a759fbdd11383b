// Package renewal holds the membership validity arithmetic and the plan
// renewal transition. Everything here is pure: no clock, no storage.
package renewal

import (
	"fmt"
	"strings"
	"time"

	"gymdesk-backend/internal/models"
)

// DefaultThresholdDays is how close to expiry a member counts as expiring soon.
const DefaultThresholdDays = 5

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ComputeExpiry adds months calendar months to start. When the start day does
// not exist in the target month it is clamped to that month's last day, so
// Jan 31 + 1 month is Feb 28 (or 29). The time of day is dropped.
func ComputeExpiry(start time.Time, months int) time.Time {
	y, m, d := start.Date()
	total := int(m) - 1 + months
	year := y + total/12
	idx := total % 12
	if idx < 0 {
		idx += 12
		year--
	}
	month := time.Month(idx + 1)
	if last := daysIn(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DaysRemaining counts whole calendar days from today to expiry. It is negative
// once the plan has lapsed.
func DaysRemaining(expiry, today time.Time) int {
	return int(DateOnly(expiry).Sub(DateOnly(today)).Hours() / 24)
}

// IsExpiringSoon reports whether expiry falls within thresholdDays of today,
// today and the threshold day included. Lapsed plans are not expiring soon.
func IsExpiringSoon(expiry, today time.Time, thresholdDays int) bool {
	days := DaysRemaining(expiry, today)
	return days >= 0 && days <= thresholdDays
}

func IsExpired(expiry, today time.Time) bool {
	return DaysRemaining(expiry, today) < 0
}

// ValidUpto is the expiry of the member's current plan.
func ValidUpto(m models.Member) time.Time {
	return ComputeExpiry(m.PlanStart(), m.Duration)
}

// Input carries the replacement plan for a renewal.
type Input struct {
	Amount       string
	PlanStarted  time.Time
	PaymentMode  models.PaymentMode
	UTR          string
	ReceiverName string
	Duration     int
}

func (in Input) validate() error {
	verr := &models.ValidationError{}
	if in.Duration < 1 || in.Duration > 12 {
		verr.Fields = append(verr.Fields, models.FieldError{Field: "newDuration", Message: "newDuration must be between 1 and 12", Expected: "1..12"})
	}
	if _, err := models.ParseAmount(in.Amount); err != nil {
		verr.Fields = append(verr.Fields, models.FieldError{Field: "newAmount", Message: "newAmount must be a non-negative number", Expected: "decimal string"})
	}
	if in.PlanStarted.IsZero() {
		verr.Fields = append(verr.Fields, models.FieldError{Field: "newPlanStartDate", Message: "newPlanStartDate is required", Expected: "YYYY-MM-DD"})
	}
	switch in.PaymentMode {
	case models.PaymentModeUPI:
		if strings.TrimSpace(in.UTR) == "" {
			verr.Fields = append(verr.Fields, models.FieldError{Field: "newUtr", Message: "newUtr is required when newPaymentMode is upi", Expected: "not empty"})
		}
	case models.PaymentModeCash:
		if strings.TrimSpace(in.ReceiverName) == "" {
			verr.Fields = append(verr.Fields, models.FieldError{Field: "newReceiverName", Message: "newReceiverName is required when newPaymentMode is cash", Expected: "not empty"})
		}
	default:
		verr.Fields = append(verr.Fields, models.FieldError{Field: "newPaymentMode", Message: fmt.Sprintf("newPaymentMode %q must be one of: upi cash", in.PaymentMode), Expected: "upi cash"})
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// ApplyRenewal archives the member's current plan into PreviousPlan and
// replaces it with in. The returned member is a new value; m and its history
// slice are left untouched.
func ApplyRenewal(m models.Member, in Input, now time.Time) (models.Member, error) {
	if err := in.validate(); err != nil {
		return models.Member{}, err
	}

	history := make([]models.PlanRecord, 0, len(m.PreviousPlan)+1)
	history = append(history, m.PreviousPlan...)
	history = append(history, m.CurrentPlan(now))

	out := m
	out.PreviousPlan = history
	out.Amount = strings.TrimSpace(in.Amount)
	out.PaymentMode = in.PaymentMode
	out.UTR = strings.TrimSpace(in.UTR)
	out.ReceiverName = strings.TrimSpace(in.ReceiverName)
	out.Duration = in.Duration
	started := DateOnly(in.PlanStarted)
	out.PlanStarted = &started
	out.Verified = true
	out.NormalizePayment()

	if err := models.ValidateMember(&out); err != nil {
		return models.Member{}, err
	}
	return out, nil
}
