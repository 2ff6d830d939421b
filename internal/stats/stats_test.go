package stats

import (
	"testing"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

func guest(status domain.GuestStatus, partySize int) domain.Guest {
	return domain.Guest{Status: status, PartySize: partySize}
}

func TestCompute(t *testing.T) {
	guests := []domain.Guest{
		guest(domain.GuestStatusYes, 2),
		guest(domain.GuestStatusYes, 1),
		guest(domain.GuestStatusYes, 4),
		guest(domain.GuestStatusNo, 1),
		guest(domain.GuestStatusNo, 3),
		guest(domain.GuestStatusMaybe, 2),
	}

	s := Compute(guests)
	if s.TotalGuests != 6 {
		t.Errorf("TotalGuests = %d, want 6", s.TotalGuests)
	}
	if s.ConfirmedGuests != 3 {
		t.Errorf("ConfirmedGuests = %d, want 3", s.ConfirmedGuests)
	}
	if s.DeclinedGuests != 2 {
		t.Errorf("DeclinedGuests = %d, want 2", s.DeclinedGuests)
	}
	if s.PendingGuests != 1 {
		t.Errorf("PendingGuests = %d, want 1", s.PendingGuests)
	}
	if s.TotalExpectedAttendees != 7 {
		t.Errorf("TotalExpectedAttendees = %d, want 7: declined and maybe party sizes must not count", s.TotalExpectedAttendees)
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	if s != (domain.GuestStatistics{}) {
		t.Errorf("Compute(nil) = %+v, want all zeros", s)
	}
}

func TestDistribution(t *testing.T) {
	tests := []struct {
		name            string
		yes, no, maybe  int
		wantPercentages [3]float64
	}{
		{"even thirds", 1, 1, 1, [3]float64{33.3, 33.3, 33.3}},
		{"all one status", 4, 0, 0, [3]float64{100, 0, 0}},
		{"mixed", 3, 2, 1, [3]float64{50, 33.3, 16.7}},
		{"empty", 0, 0, 0, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := DistributionFromCounts(tt.yes, tt.no, tt.maybe)
			if len(dist) != 3 {
				t.Fatalf("len = %d, want 3 fixed entries", len(dist))
			}
			wantOrder := []domain.GuestStatus{domain.GuestStatusYes, domain.GuestStatusNo, domain.GuestStatusMaybe}
			wantCounts := []int{tt.yes, tt.no, tt.maybe}
			for i, d := range dist {
				if d.Status != wantOrder[i] {
					t.Errorf("entry %d status = %q, want %q", i, d.Status, wantOrder[i])
				}
				if d.Count != wantCounts[i] {
					t.Errorf("entry %d count = %d, want %d", i, d.Count, wantCounts[i])
				}
				if d.Percentage != tt.wantPercentages[i] {
					t.Errorf("entry %d percentage = %v, want %v", i, d.Percentage, tt.wantPercentages[i])
				}
			}
		})
	}
}

func TestDistributionMatchesCompute(t *testing.T) {
	guests := []domain.Guest{
		guest(domain.GuestStatusMaybe, 1),
		guest(domain.GuestStatusYes, 2),
		guest(domain.GuestStatusNo, 1),
		guest(domain.GuestStatusYes, 1),
	}
	dist := Distribution(guests)
	total := 0
	for _, d := range dist {
		total += d.Count
	}
	if total != len(guests) {
		t.Errorf("counts sum to %d, want %d", total, len(guests))
	}
}
