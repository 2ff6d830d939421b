package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/events"
	"github.com/spec-kit/rsvp-service/internal/rsvp"
	"github.com/spec-kit/rsvp-service/internal/testfixtures"
)

type rsvpHarness struct {
	service *RSVPService
	guests  *testfixtures.MemoryGuestRepository
	flags   *testfixtures.MemoryFlagStore
}

func newRSVPHarness() *rsvpHarness {
	guests := testfixtures.NewMemoryGuestRepository()
	flags := testfixtures.NewMemoryFlagStore()
	svc := NewRSVPService(RSVPDependencies{
		Sessions:   testfixtures.NewMemorySessionStore(),
		GuestRepo:  guests,
		Gate:       rsvp.NewUnlockGate(flags),
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	return &rsvpHarness{service: svc, guests: guests, flags: flags}
}

func statusPtr(s domain.GuestStatus) *domain.GuestStatus { return &s }
func strPtr(s string) *string                            { return &s }
func intPtr(n int) *int                                  { return &n }

// walkToMessage drives a device through attendance and identity.
func walkToMessage(t *testing.T, h *rsvpHarness, deviceID string, status domain.GuestStatus) {
	t.Helper()
	ctx := context.Background()
	if _, err := h.service.Start(ctx, deviceID); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := h.service.Advance(ctx, deviceID, rsvp.Fields{
		Attending: statusPtr(status),
		PartySize: intPtr(2),
	}); err != nil {
		t.Fatalf("Advance() to identity error = %v", err)
	}
	if _, err := h.service.Advance(ctx, deviceID, rsvp.Fields{
		Name: strPtr("Maria Silva"),
	}); err != nil {
		t.Fatalf("Advance() to message error = %v", err)
	}
}

func TestCurrentStartsFreshSession(t *testing.T) {
	h := newRSVPHarness()
	state, err := h.service.Current(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if state.Step != rsvp.StepAttendance {
		t.Errorf("Step = %q, want %q", state.Step, rsvp.StepAttendance)
	}
}

func TestAdvanceGuardKeepsStoredState(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	if _, err := h.service.Start(ctx, "device-1"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// No attendance chosen, so the guard blocks.
	if _, err := h.service.Advance(ctx, "device-1", rsvp.Fields{}); err == nil {
		t.Fatal("Advance() error = nil, want guard error")
	}

	state, err := h.service.Current(ctx, "device-1")
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if state.Step != rsvp.StepAttendance {
		t.Errorf("stored Step = %q, want unchanged %q", state.Step, rsvp.StepAttendance)
	}
}

func TestSubmitYesEngagesGate(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	walkToMessage(t, h, "device-1", domain.GuestStatusYes)

	state, guest, err := h.service.Submit(ctx, "device-1", rsvp.Fields{Message: strPtr("congrats!")})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if state.Step != rsvp.StepConfirmation {
		t.Errorf("Step = %q, want %q", state.Step, rsvp.StepConfirmation)
	}
	if guest == nil || guest.Status != domain.GuestStatusYes {
		t.Fatalf("guest = %+v, want stored yes record", guest)
	}
	if guest.PartySize != 2 {
		t.Errorf("PartySize = %d, want 2", guest.PartySize)
	}

	unlocked, err := h.service.Unlocked(ctx, "device-1")
	if err != nil {
		t.Fatalf("Unlocked() error = %v", err)
	}
	if !unlocked {
		t.Error("gate not engaged after a yes submission")
	}
}

func TestSubmitNoLeavesGateLocked(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	walkToMessage(t, h, "device-1", domain.GuestStatusNo)

	_, guest, err := h.service.Submit(ctx, "device-1", rsvp.Fields{})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if guest.Status != domain.GuestStatusNo {
		t.Errorf("Status = %q, want no", guest.Status)
	}

	unlocked, err := h.service.Unlocked(ctx, "device-1")
	if err != nil {
		t.Fatalf("Unlocked() error = %v", err)
	}
	if unlocked {
		t.Error("gate engaged by a declining submission")
	}
}

func TestSubmitMaybeLeavesGateLocked(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	walkToMessage(t, h, "device-1", domain.GuestStatusMaybe)

	if _, _, err := h.service.Submit(ctx, "device-1", rsvp.Fields{}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	unlocked, _ := h.service.Unlocked(ctx, "device-1")
	if unlocked {
		t.Error("gate engaged by a maybe submission")
	}
}

func TestSubmitStoreFailureKeepsMessageStep(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	walkToMessage(t, h, "device-1", domain.GuestStatusYes)

	storeErr := errors.New("insert failed")
	h.guests.InsertErr = storeErr

	_, _, err := h.service.Submit(ctx, "device-1", rsvp.Fields{})
	if !errors.Is(err, storeErr) {
		t.Fatalf("Submit() error = %v, want store error", err)
	}

	state, err := h.service.Current(ctx, "device-1")
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if state.Step != rsvp.StepMessage {
		t.Errorf("Step = %q, want retryable %q", state.Step, rsvp.StepMessage)
	}
	if h.guests.Len() != 0 {
		t.Errorf("stored guests = %d, want 0", h.guests.Len())
	}
	unlocked, _ := h.service.Unlocked(ctx, "device-1")
	if unlocked {
		t.Error("gate engaged despite store failure")
	}
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	walkToMessage(t, h, "device-1", domain.GuestStatusYes)

	if !h.service.beginSubmit("device-1") {
		t.Fatal("beginSubmit() = false on idle device")
	}
	defer h.service.endSubmit("device-1")

	if _, _, err := h.service.Submit(ctx, "device-1", rsvp.Fields{}); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Submit() error = %v, want ErrSubmissionInFlight", err)
	}
}

func TestSubmitFromWrongStep(t *testing.T) {
	h := newRSVPHarness()
	ctx := context.Background()
	if _, err := h.service.Start(ctx, "device-1"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, _, err := h.service.Submit(ctx, "device-1", rsvp.Fields{}); !errors.Is(err, rsvp.ErrNotAtMessage) {
		t.Errorf("Submit() error = %v, want ErrNotAtMessage", err)
	}
	if h.guests.Len() != 0 {
		t.Errorf("stored guests = %d, want 0", h.guests.Len())
	}
}
