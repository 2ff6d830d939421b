package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/events"
	"github.com/spec-kit/rsvp-service/internal/persistence"
	"github.com/spec-kit/rsvp-service/internal/testfixtures"
)

func seededGuestService(t *testing.T) (*GuestService, *testfixtures.MemoryGuestRepository, []domain.Guest) {
	t.Helper()
	repo := testfixtures.NewMemoryGuestRepository()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seeded := []domain.Guest{
		repo.Seed(domain.Guest{ID: "g-1", Name: "Ana Costa", Email: strPtr("ana@example.com"), Status: domain.GuestStatusYes, PartySize: 2, ResponseSource: domain.ResponseSourceWeb, CreatedAt: base}),
		repo.Seed(domain.Guest{ID: "g-2", Name: "Bruno Lima", Status: domain.GuestStatusNo, PartySize: 1, ResponseSource: domain.ResponseSourceWeb, CreatedAt: base.Add(time.Hour)}),
		repo.Seed(domain.Guest{ID: "g-3", Name: "Carla Anand", Email: strPtr("carla@example.com"), Status: domain.GuestStatusYes, PartySize: 3, ResponseSource: domain.ResponseSourcePhone, CreatedAt: base.Add(2 * time.Hour)}),
		repo.Seed(domain.Guest{ID: "g-4", Name: "Diego Rocha", Status: domain.GuestStatusMaybe, PartySize: 1, ResponseSource: domain.ResponseSourceManual, CreatedAt: base.Add(3 * time.Hour)}),
	}
	return NewGuestService(repo, events.NewInMemoryDispatcher()), repo, seeded
}

func guestIDs(guests []domain.Guest) []string {
	ids := make([]string, len(guests))
	for i, g := range guests {
		ids[i] = g.ID
	}
	return ids
}

func TestListFilter(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria domain.GuestFilterCriteria
		wantIDs  []string
	}{
		{
			name:     "default order is newest first",
			criteria: domain.GuestFilterCriteria{},
			wantIDs:  []string{"g-4", "g-3", "g-2", "g-1"},
		},
		{
			name:     "status filter",
			criteria: domain.GuestFilterCriteria{Status: domain.StatusFilterYes, SortBy: domain.SortByCreatedAt, SortOrder: domain.SortAsc},
			wantIDs:  []string{"g-1", "g-3"},
		},
		{
			name:     "search matches name case-insensitively",
			criteria: domain.GuestFilterCriteria{SearchTerm: "bRuNo"},
			wantIDs:  []string{"g-2"},
		},
		{
			name:     "search matches name or email",
			criteria: domain.GuestFilterCriteria{SearchTerm: "an", SortBy: domain.SortByName, SortOrder: domain.SortAsc},
			wantIDs:  []string{"g-1", "g-3"},
		},
		{
			name:     "search and status combine",
			criteria: domain.GuestFilterCriteria{SearchTerm: "an", Status: domain.StatusFilterYes, SortBy: domain.SortByName, SortOrder: domain.SortAsc},
			wantIDs:  []string{"g-1", "g-3"},
		},
		{
			name:     "sort by name descending",
			criteria: domain.GuestFilterCriteria{SortBy: domain.SortByName, SortOrder: domain.SortDesc},
			wantIDs:  []string{"g-4", "g-3", "g-2", "g-1"},
		},
		{
			name:     "no matches yields empty list",
			criteria: domain.GuestFilterCriteria{SearchTerm: "zzz"},
			wantIDs:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guests, err := svc.List(ctx, tt.criteria)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			got := guestIDs(guests)
			if strings.Join(got, ",") != strings.Join(tt.wantIDs, ",") {
				t.Errorf("List() ids = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestCreateManual(t *testing.T) {
	svc, repo, _ := seededGuestService(t)
	ctx := context.Background()

	guest, err := svc.CreateManual(ctx, domain.GuestInput{
		Name:   "  Eva Braga  ",
		Status: domain.GuestStatusYes,
	})
	if err != nil {
		t.Fatalf("CreateManual() error = %v", err)
	}
	if guest.Name != "Eva Braga" {
		t.Errorf("Name = %q, want trimmed", guest.Name)
	}
	if guest.ResponseSource != domain.ResponseSourceManual {
		t.Errorf("ResponseSource = %q, want manual default", guest.ResponseSource)
	}
	if guest.PartySize != 1 {
		t.Errorf("PartySize = %d, want default 1", guest.PartySize)
	}
	if !guest.GoingToReception {
		t.Error("GoingToReception = false, want derived true")
	}
	if repo.Len() != 5 {
		t.Errorf("stored guests = %d, want 5", repo.Len())
	}
}

func TestCreateManualValidates(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	ctx := context.Background()

	if _, err := svc.CreateManual(ctx, domain.GuestInput{Status: domain.GuestStatusYes}); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("CreateManual() error = %v, want ErrNameRequired", err)
	}
	if _, err := svc.CreateManual(ctx, domain.GuestInput{Name: "Eva", Status: "later"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("CreateManual() error = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdate(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	ctx := context.Background()

	status := domain.GuestStatusYes
	notes := "vegetarian table"
	guest, err := svc.Update(ctx, "g-4", domain.GuestUpdate{Status: &status, AdminNotes: &notes})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if guest.Status != domain.GuestStatusYes {
		t.Errorf("Status = %q, want yes", guest.Status)
	}
	if guest.AdminNotes == nil || *guest.AdminNotes != notes {
		t.Errorf("AdminNotes = %v, want %q", guest.AdminNotes, notes)
	}
	if guest.ConfirmedAt == nil {
		t.Error("ConfirmedAt not set on transition to yes")
	}
}

func TestUpdateMissingGuest(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	status := domain.GuestStatusNo
	if _, err := svc.Update(context.Background(), "missing", domain.GuestUpdate{Status: &status}); !errors.Is(err, persistence.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	bad := domain.GuestStatus("later")
	if _, err := svc.Update(context.Background(), "g-1", domain.GuestUpdate{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("Update() error = %v, want ErrInvalidStatus", err)
	}
}

func TestDelete(t *testing.T) {
	svc, repo, _ := seededGuestService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, "g-2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if repo.Len() != 3 {
		t.Errorf("stored guests = %d, want 3", repo.Len())
	}
	if err := svc.Delete(ctx, "g-2"); !errors.Is(err, persistence.ErrNotFound) {
		t.Errorf("repeat Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	s, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if s.TotalGuests != 4 || s.ConfirmedGuests != 2 || s.DeclinedGuests != 1 || s.PendingGuests != 1 {
		t.Errorf("Stats() = %+v, want 4 total, 2 yes, 1 no, 1 maybe", s)
	}
	if s.TotalExpectedAttendees != 5 {
		t.Errorf("TotalExpectedAttendees = %d, want 5", s.TotalExpectedAttendees)
	}
}

func TestDistributionOrder(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	dist, err := svc.Distribution(context.Background())
	if err != nil {
		t.Fatalf("Distribution() error = %v", err)
	}
	if len(dist) != 3 || dist[0].Status != domain.GuestStatusYes || dist[1].Status != domain.GuestStatusNo || dist[2].Status != domain.GuestStatusMaybe {
		t.Errorf("Distribution() = %+v, want fixed yes/no/maybe order", dist)
	}
	if dist[0].Count != 2 || dist[0].Percentage != 50 {
		t.Errorf("yes entry = %+v, want count 2 at 50%%", dist[0])
	}
}

func TestExportCSV(t *testing.T) {
	svc, _, _ := seededGuestService(t)
	ctx := context.Background()

	csv, err := svc.ExportCSV(ctx, domain.GuestFilterCriteria{Status: domain.StatusFilterYes, SortBy: domain.SortByCreatedAt, SortOrder: domain.SortAsc})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	lines := strings.Split(csv, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want header plus two yes rows", len(lines))
	}
	if !strings.HasPrefix(lines[1], `g-1,"Ana Costa"`) {
		t.Errorf("row 1 = %q, want g-1 first", lines[1])
	}

	empty, err := svc.ExportCSV(ctx, domain.GuestFilterCriteria{SearchTerm: "zzz"})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if strings.Contains(empty, "\n") {
		t.Errorf("empty export = %q, want header only", empty)
	}
}
