package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/events"
	"github.com/spec-kit/rsvp-service/internal/export"
	"github.com/spec-kit/rsvp-service/internal/repository"
)

// GuestService serves the administration area: filtered listings, edits,
// aggregate statistics and CSV export.
type GuestService struct {
	guests     repository.GuestRepository
	dispatcher events.Dispatcher
}

// NewGuestService constructs the service.
func NewGuestService(guests repository.GuestRepository, dispatcher events.Dispatcher) *GuestService {
	return &GuestService{guests: guests, dispatcher: dispatcher}
}

// List queries guests with the given filter. Zero matches is an empty
// list, never an error.
func (s *GuestService) List(ctx context.Context, criteria domain.GuestFilterCriteria) ([]domain.Guest, error) {
	guests, err := s.guests.ListWithFilter(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if guests == nil {
		guests = []domain.Guest{}
	}
	return guests, nil
}

// Get looks up one guest by id. Missing records surface as the
// persistence not-found sentinel for the caller to treat as an absent
// result rather than a fault.
func (s *GuestService) Get(ctx context.Context, id string) (*domain.Guest, error) {
	return s.guests.GetByID(ctx, id)
}

// CreateManual records an RSVP an administrator took over the phone or
// entered by hand.
func (s *GuestService) CreateManual(ctx context.Context, input domain.GuestInput) (*domain.Guest, error) {
	if input.ResponseSource == "" {
		input.ResponseSource = domain.ResponseSourceManual
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.PartySize == 0 {
		input.PartySize = 1
	}
	input.GoingToReception = input.Status == domain.GuestStatusYes
	if err := input.Validate(); err != nil {
		return nil, err
	}

	guest, err := s.guests.Insert(ctx, input)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventGuestCreated,
		GuestID: guest.ID,
		Payload: events.GuestCreatedPayload{
			Name:           guest.Name,
			Status:         guest.Status,
			PartySize:      guest.PartySize,
			ResponseSource: guest.ResponseSource,
		},
	})
	return guest, nil
}

// Update applies an administrator edit. A missing id fails loudly rather
// than silently no-oping.
func (s *GuestService) Update(ctx context.Context, id string, update domain.GuestUpdate) (*domain.Guest, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	before, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	guest, err := s.guests.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventGuestUpdated,
		GuestID: guest.ID,
		Payload: events.GuestUpdatedPayload{
			OldStatus: before.Status,
			NewStatus: guest.Status,
			NotesSet:  update.AdminNotes != nil,
		},
	})
	return guest, nil
}

// Delete removes a guest record. A missing id fails loudly.
func (s *GuestService) Delete(ctx context.Context, id string) error {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guests.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventGuestDeleted,
		GuestID: id,
		Payload: events.GuestDeletedPayload{Name: guest.Name},
	})
	return nil
}

// Stats returns the aggregate breakdown computed by the store.
func (s *GuestService) Stats(ctx context.Context) (*domain.GuestStatistics, error) {
	return s.guests.AggregateStats(ctx)
}

// Distribution returns the per-status distribution computed by the store.
func (s *GuestService) Distribution(ctx context.Context) ([]domain.GuestDistribution, error) {
	return s.guests.AggregateDistribution(ctx)
}

// ExportCSV renders the filtered guest list as CSV. An empty result still
// yields the header row.
func (s *GuestService) ExportCSV(ctx context.Context, criteria domain.GuestFilterCriteria) (string, error) {
	guests, err := s.List(ctx, criteria)
	if err != nil {
		return "", err
	}
	return export.GuestsCSV(guests), nil
}

func (s *GuestService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
