package services

import (
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"

	"github.com/shopspring/decimal"
)

// Stats is the dashboard summary over the full member list.
type Stats struct {
	Total             int             `json:"total"`
	Male              int             `json:"male"`
	Female            int             `json:"female"`
	Other             int             `json:"other"`
	DurationHistogram [12]int         `json:"durationHistogram"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	RevenueInRange    decimal.Decimal `json:"revenueInRange"`
	Verified          int             `json:"verified"`
	ExpiringSoon      int             `json:"expiringSoon"`
	Expired           int             `json:"expired"`
	InvalidAmounts    int             `json:"invalidAmounts"`
}

// ComputeStats aggregates members as of today using the configured
// expiring-soon threshold. from and to bound the revenue-in-range figure by
// joining date; either may be nil.
func ComputeStats(members []models.Member, from, to *time.Time) Stats {
	return computeStatsAt(members, from, to, Now(), CurrentSettings().ExpiryThresholdDays)
}

func computeStatsAt(members []models.Member, from, to *time.Time, today time.Time, thresholdDays int) Stats {
	stats := Stats{
		Total:          len(members),
		TotalRevenue:   decimal.Zero,
		RevenueInRange: decimal.Zero,
	}

	for _, m := range members {
		switch m.Gender {
		case models.GenderMale:
			stats.Male++
		case models.GenderFemale:
			stats.Female++
		case models.GenderOther:
			stats.Other++
		}

		if m.Duration >= 1 && m.Duration <= 12 {
			stats.DurationHistogram[m.Duration-1]++
		}
		if m.Verified {
			stats.Verified++
		}

		expiry := renewal.ValidUpto(m)
		switch {
		case renewal.IsExpired(expiry, today):
			stats.Expired++
		case renewal.IsExpiringSoon(expiry, today, thresholdDays):
			stats.ExpiringSoon++
		}

		amount, err := models.ParseAmount(m.Amount)
		if err != nil {
			stats.InvalidAmounts++
		} else {
			stats.TotalRevenue = stats.TotalRevenue.Add(amount)
			if joinedWithin(m.DOJ, from, to) {
				stats.RevenueInRange = stats.RevenueInRange.Add(amount)
			}
		}

		for _, p := range m.PreviousPlan {
			past, err := models.ParseAmount(p.Amount)
			if err != nil {
				stats.InvalidAmounts++
				continue
			}
			stats.TotalRevenue = stats.TotalRevenue.Add(past)
		}
	}
	return stats
}

// joinedWithin compares calendar dates, both bounds inclusive.
func joinedWithin(doj time.Time, from, to *time.Time) bool {
	day := renewal.DateOnly(doj)
	if from != nil && day.Before(renewal.DateOnly(*from)) {
		return false
	}
	if to != nil && day.After(renewal.DateOnly(*to)) {
		return false
	}
	return true
}
