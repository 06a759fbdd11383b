package services

import (
	"sort"
	"strings"
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"
)

const (
	SortBySerialNumber = "serialNumber"
	SortByName         = "name"
)

// MemberFilter narrows and orders a fetched member list. Zero values match
// everything.
type MemberFilter struct {
	Search    string
	Verified  *bool
	Gender    models.Gender
	Duration  int
	DOJ       *time.Time
	ValidUpto *time.Time
	SortBy    string
	SortDesc  bool
}

// FilterMembers returns the matching members in the requested order. The input
// slice is not reordered.
func FilterMembers(members []models.Member, f MemberFilter) []models.Member {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if search != "" && !strings.Contains(strings.ToLower(m.Name), search) {
			continue
		}
		if f.Verified != nil && m.Verified != *f.Verified {
			continue
		}
		if f.Gender != "" && m.Gender != f.Gender {
			continue
		}
		if f.Duration != 0 && m.Duration != f.Duration {
			continue
		}
		if f.DOJ != nil && !renewal.DateOnly(m.DOJ).Equal(renewal.DateOnly(*f.DOJ)) {
			continue
		}
		if f.ValidUpto != nil && !renewal.ValidUpto(m).Equal(renewal.DateOnly(*f.ValidUpto)) {
			continue
		}
		out = append(out, m)
	}

	less := func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber }
	if f.SortBy == SortByName {
		less = func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if a == b {
				return out[i].SerialNumber < out[j].SerialNumber
			}
			return a < b
		}
	}
	if f.SortDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}
