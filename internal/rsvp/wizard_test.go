package rsvp

import (
	"errors"
	"testing"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

func statusPtr(s domain.GuestStatus) *domain.GuestStatus { return &s }
func strPtr(s string) *string                            { return &s }
func intPtr(n int) *int                                  { return &n }

func TestNewState(t *testing.T) {
	state := NewState()
	if state.Step != StepAttendance {
		t.Errorf("Step = %q, want %q", state.Step, StepAttendance)
	}
	if state.PartySize != MinPartySize {
		t.Errorf("PartySize = %d, want %d", state.PartySize, MinPartySize)
	}
}

func TestApplyValidation(t *testing.T) {
	tests := []struct {
		name      string
		fields    Fields
		wantField string
	}{
		{
			name:      "unknown attendance value",
			fields:    Fields{Attending: statusPtr("perhaps")},
			wantField: "attending",
		},
		{
			name:      "party size below range",
			fields:    Fields{PartySize: intPtr(0)},
			wantField: "party_size",
		},
		{
			name:      "party size above range",
			fields:    Fields{PartySize: intPtr(MaxPartySize + 1)},
			wantField: "party_size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			_, err := state.Apply(tt.fields)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Apply() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestApplyLeavesStateOnError(t *testing.T) {
	state := NewState()
	state.Attending = domain.GuestStatusYes
	state.PartySize = 2

	after, err := state.Apply(Fields{PartySize: intPtr(9)})
	if err == nil {
		t.Fatal("Apply() error = nil, want range error")
	}
	if after.PartySize != 2 {
		t.Errorf("PartySize = %d, want unchanged 2", after.PartySize)
	}
}

func TestNextGuards(t *testing.T) {
	t.Run("attendance requires an answer", func(t *testing.T) {
		state := NewState()
		_, err := state.Next()
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "attending" {
			t.Fatalf("Next() error = %v, want attending validation error", err)
		}
	})

	t.Run("identity requires a non-blank name", func(t *testing.T) {
		state := NewState()
		state.Step = StepIdentity
		state.Name = "   "
		_, err := state.Next()
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "name" {
			t.Fatalf("Next() error = %v, want name validation error", err)
		}
	})

	t.Run("message step never advances through Next", func(t *testing.T) {
		state := NewState()
		state.Step = StepMessage
		_, err := state.Next()
		if !errors.Is(err, ErrNotAtMessage) {
			t.Fatalf("Next() error = %v, want ErrNotAtMessage", err)
		}
	})

	t.Run("confirmation is terminal", func(t *testing.T) {
		state := NewState()
		state.Step = StepConfirmation
		if _, err := state.Next(); !errors.Is(err, ErrFlowFinished) {
			t.Errorf("Next() error = %v, want ErrFlowFinished", err)
		}
		if _, err := state.Apply(Fields{Name: strPtr("x")}); !errors.Is(err, ErrFlowFinished) {
			t.Errorf("Apply() error = %v, want ErrFlowFinished", err)
		}
		if _, err := state.Back(); !errors.Is(err, ErrFlowFinished) {
			t.Errorf("Back() error = %v, want ErrFlowFinished", err)
		}
	})
}

func TestForwardWalk(t *testing.T) {
	state := NewState()

	state, err := state.Apply(Fields{Attending: statusPtr(domain.GuestStatusYes), PartySize: intPtr(3)})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	state, err = state.Next()
	if err != nil {
		t.Fatalf("Next() from attendance error = %v", err)
	}
	if state.Step != StepIdentity {
		t.Fatalf("Step = %q, want %q", state.Step, StepIdentity)
	}

	state, err = state.Apply(Fields{Name: strPtr("Maria Silva"), Email: strPtr("maria@example.com")})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	state, err = state.Next()
	if err != nil {
		t.Fatalf("Next() from identity error = %v", err)
	}
	if state.Step != StepMessage {
		t.Fatalf("Step = %q, want %q", state.Step, StepMessage)
	}
}

func TestBackPreservesValues(t *testing.T) {
	state := NewState()
	state.Step = StepMessage
	state.Attending = domain.GuestStatusYes
	state.Name = "Maria"
	state.PartySize = 4

	state, err := state.Back()
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if state.Step != StepIdentity {
		t.Errorf("Step = %q, want %q", state.Step, StepIdentity)
	}
	state, err = state.Back()
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if state.Step != StepAttendance {
		t.Errorf("Step = %q, want %q", state.Step, StepAttendance)
	}
	if state.Name != "Maria" || state.Attending != domain.GuestStatusYes || state.PartySize != 4 {
		t.Errorf("entered values lost after Back: %+v", state)
	}

	if _, err := state.Back(); !errors.Is(err, ErrAtFirstStep) {
		t.Errorf("Back() at first step error = %v, want ErrAtFirstStep", err)
	}
}

func TestPayload(t *testing.T) {
	t.Run("only from message step", func(t *testing.T) {
		state := NewState()
		if _, err := state.Payload(); !errors.Is(err, ErrNotAtMessage) {
			t.Fatalf("Payload() error = %v, want ErrNotAtMessage", err)
		}
	})

	t.Run("maps collected fields", func(t *testing.T) {
		state := State{
			Step:      StepMessage,
			Attending: domain.GuestStatusYes,
			Name:      "  Maria Silva  ",
			Email:     "maria@example.com",
			PartySize: 3,
			Message:   "see you there",
		}
		input, err := state.Payload()
		if err != nil {
			t.Fatalf("Payload() error = %v", err)
		}
		if input.Name != "Maria Silva" {
			t.Errorf("Name = %q, want trimmed", input.Name)
		}
		if !input.GoingToReception {
			t.Error("GoingToReception = false, want true for yes")
		}
		if input.ResponseSource != domain.ResponseSourceWeb {
			t.Errorf("ResponseSource = %q, want web", input.ResponseSource)
		}
		if input.Phone != nil {
			t.Error("Phone should stay nil when not entered")
		}
		if input.Message == nil || *input.Message != "see you there" {
			t.Errorf("Message = %v, want pointer to entered text", input.Message)
		}
	})

	t.Run("declining guest is not going to reception", func(t *testing.T) {
		state := State{Step: StepMessage, Attending: domain.GuestStatusNo, Name: "Jon", PartySize: 1}
		input, err := state.Payload()
		if err != nil {
			t.Fatalf("Payload() error = %v", err)
		}
		if input.GoingToReception {
			t.Error("GoingToReception = true, want false for no")
		}
	})
}

func TestComplete(t *testing.T) {
	state := State{Step: StepMessage, Attending: domain.GuestStatusYes, Name: "Jon", PartySize: 1}
	done, err := state.Complete()
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if done.Step != StepConfirmation {
		t.Errorf("Step = %q, want %q", done.Step, StepConfirmation)
	}

	if _, err := NewState().Complete(); !errors.Is(err, ErrNotAtMessage) {
		t.Errorf("Complete() from attendance error = %v, want ErrNotAtMessage", err)
	}
}
