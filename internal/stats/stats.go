// Package stats computes RSVP count breakdowns and percentage
// distributions. All functions are pure and order-independent, so the same
// guest multiset always yields the same totals. The SQL aggregates in the
// repository mirror these definitions.
package stats

import (
	"math"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// Compute derives the aggregate breakdown from a guest list.
func Compute(guests []domain.Guest) domain.GuestStatistics {
	var s domain.GuestStatistics
	for _, g := range guests {
		s.TotalGuests++
		switch g.Status {
		case domain.GuestStatusYes:
			s.ConfirmedGuests++
			s.TotalExpectedAttendees += g.PartySize
		case domain.GuestStatusNo:
			s.DeclinedGuests++
		case domain.GuestStatusMaybe:
			s.PendingGuests++
		}
	}
	return s
}

// Distribution derives the per-status distribution from a guest list.
// Counts always sum to the list length; percentages are rounded to one
// decimal and may sum slightly off 100. A zero-length list yields zero
// percentages, never a division fault.
func Distribution(guests []domain.Guest) []domain.GuestDistribution {
	var yes, no, maybe int
	for _, g := range guests {
		switch g.Status {
		case domain.GuestStatusYes:
			yes++
		case domain.GuestStatusNo:
			no++
		case domain.GuestStatusMaybe:
			maybe++
		}
	}
	return DistributionFromCounts(yes, no, maybe)
}

// DistributionFromCounts builds the distribution from already-aggregated
// counts, in the fixed yes, no, maybe order the dashboard charts expect.
func DistributionFromCounts(yes, no, maybe int) []domain.GuestDistribution {
	total := yes + no + maybe
	return []domain.GuestDistribution{
		{Status: domain.GuestStatusYes, Count: yes, Percentage: percentage(yes, total)},
		{Status: domain.GuestStatusNo, Count: no, Percentage: percentage(no, total)},
		{Status: domain.GuestStatusMaybe, Count: maybe, Percentage: percentage(maybe, total)},
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
