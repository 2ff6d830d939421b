// Package testfixtures provides in-memory stand-ins for the persistence
// layer, used by service and handler tests.
package testfixtures

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/persistence"
	"github.com/spec-kit/rsvp-service/internal/stats"
)

// MemoryGuestRepository keeps guests in memory and mirrors the query
// semantics of the SQL repository: case-insensitive name/email search,
// status filtering, stable ordering with an id tie-break.
type MemoryGuestRepository struct {
	mu     sync.Mutex
	guests map[string]domain.Guest
	seq    int

	// InsertErr, when set, is returned by Insert instead of storing.
	InsertErr error
}

// NewMemoryGuestRepository returns an empty in-memory repository.
func NewMemoryGuestRepository() *MemoryGuestRepository {
	return &MemoryGuestRepository{guests: make(map[string]domain.Guest)}
}

// Seed stores a guest directly, assigning an id when absent.
func (r *MemoryGuestRepository) Seed(g domain.Guest) domain.Guest {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		r.seq++
		g.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	}
	r.guests[g.ID] = g
	return g
}

// Len reports the number of stored guests.
func (r *MemoryGuestRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.guests)
}

func (r *MemoryGuestRepository) Insert(_ context.Context, input domain.GuestInput) (*domain.Guest, error) {
	if r.InsertErr != nil {
		return nil, r.InsertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	g := domain.Guest{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(input.Name),
		Email:               input.Email,
		Phone:               input.Phone,
		Status:              input.Status,
		PartySize:           input.PartySize,
		GoingToReception:    input.GoingToReception,
		DietaryRestrictions: input.DietaryRestrictions,
		Message:             input.Message,
		ResponseSource:      input.ResponseSource,
		CreatedAt:           now,
	}
	if input.Status == domain.GuestStatusYes {
		g.ConfirmedAt = &now
	}
	r.guests[g.ID] = g
	return &g, nil
}

func (r *MemoryGuestRepository) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[id]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return &g, nil
}

func (r *MemoryGuestRepository) ListWithFilter(_ context.Context, criteria domain.GuestFilterCriteria) ([]domain.Guest, error) {
	criteria = criteria.Normalized()
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Guest, 0, len(r.guests))
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))
	for _, g := range r.guests {
		if criteria.Status != domain.StatusFilterAll && string(g.Status) != string(criteria.Status) {
			continue
		}
		if term != "" {
			email := ""
			if g.Email != nil {
				email = *g.Email
			}
			if !strings.Contains(strings.ToLower(g.Name), term) &&
				!strings.Contains(strings.ToLower(email), term) {
				continue
			}
		}
		matched = append(matched, g)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		less, equal := compareGuests(a, b, criteria.SortBy)
		if equal {
			return a.ID < b.ID
		}
		if criteria.SortOrder == domain.SortDesc {
			return !less
		}
		return less
	})
	return matched, nil
}

func compareGuests(a, b domain.Guest, field domain.SortField) (less, equal bool) {
	switch field {
	case domain.SortByName:
		return a.Name < b.Name, a.Name == b.Name
	case domain.SortByStatus:
		return a.Status < b.Status, a.Status == b.Status
	default:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	}
}

func (r *MemoryGuestRepository) Update(_ context.Context, id string, update domain.GuestUpdate) (*domain.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[id]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	now := time.Now().UTC()
	if update.Status != nil {
		if *update.Status == domain.GuestStatusYes && g.Status != domain.GuestStatusYes {
			g.ConfirmedAt = &now
		}
		g.Status = *update.Status
	}
	if update.AdminNotes != nil {
		g.AdminNotes = update.AdminNotes
	}
	g.UpdatedAt = &now
	r.guests[id] = g
	return &g, nil
}

func (r *MemoryGuestRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.guests[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.guests, id)
	return nil
}

func (r *MemoryGuestRepository) AggregateStats(_ context.Context) (*domain.GuestStatistics, error) {
	all, _ := r.ListWithFilter(context.Background(), domain.GuestFilterCriteria{})
	s := stats.Compute(all)
	return &s, nil
}

func (r *MemoryGuestRepository) AggregateDistribution(_ context.Context) ([]domain.GuestDistribution, error) {
	all, _ := r.ListWithFilter(context.Background(), domain.GuestFilterCriteria{})
	return stats.Distribution(all), nil
}
