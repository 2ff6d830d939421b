package dto

import (
	"github.com/spec-kit/rsvp-service/internal/rsvp"
)

// WizardStateResponse mirrors the device's current wizard state.
type WizardStateResponse struct {
	Step      string `json:"step"`
	Attending string `json:"attending,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	PartySize int    `json:"party_size"`
	Message   string `json:"message,omitempty"`
}

// NewWizardStateResponse converts wizard state for transport.
func NewWizardStateResponse(state rsvp.State) WizardStateResponse {
	return WizardStateResponse{
		Step:      string(state.Step),
		Attending: string(state.Attending),
		Name:      state.Name,
		Email:     state.Email,
		Phone:     state.Phone,
		PartySize: state.PartySize,
		Message:   state.Message,
	}
}

// WizardFieldsRequest carries a partial field update from the client.
type WizardFieldsRequest = rsvp.Fields

// UnlockResponse reports the device's gate state.
type UnlockResponse struct {
	Unlocked bool `json:"unlocked"`
}
