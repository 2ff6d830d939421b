package dto

import (
	"time"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// GuestResponse is the dashboard's view of one RSVP record.
type GuestResponse struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Email               *string               `json:"email,omitempty"`
	Phone               *string               `json:"phone,omitempty"`
	Status              domain.GuestStatus    `json:"status"`
	PartySize           int                   `json:"party_size"`
	GoingToReception    bool                  `json:"going_to_reception"`
	DietaryRestrictions *string               `json:"dietary_restrictions,omitempty"`
	Message             *string               `json:"message,omitempty"`
	AdminNotes          *string               `json:"admin_notes,omitempty"`
	ResponseSource      domain.ResponseSource `json:"response_source"`
	ConfirmedAt         *time.Time            `json:"confirmed_at,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           *time.Time            `json:"updated_at,omitempty"`
}

// NewGuestResponse converts a guest for transport.
func NewGuestResponse(guest *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:                  guest.ID,
		Name:                guest.Name,
		Email:               guest.Email,
		Phone:               guest.Phone,
		Status:              guest.Status,
		PartySize:           guest.PartySize,
		GoingToReception:    guest.GoingToReception,
		DietaryRestrictions: guest.DietaryRestrictions,
		Message:             guest.Message,
		AdminNotes:          guest.AdminNotes,
		ResponseSource:      guest.ResponseSource,
		ConfirmedAt:         guest.ConfirmedAt,
		CreatedAt:           guest.CreatedAt,
		UpdatedAt:           guest.UpdatedAt,
	}
}

// CreateGuestRequest is an administrator's manual RSVP entry.
type CreateGuestRequest struct {
	Name           string                `json:"name"`
	Email          *string               `json:"email"`
	Phone          *string               `json:"phone"`
	Status         domain.GuestStatus    `json:"status"`
	PartySize      int                   `json:"party_size"`
	Message        *string               `json:"message"`
	ResponseSource domain.ResponseSource `json:"response_source"`
}

// UpdateGuestRequest carries the administrator-editable fields.
type UpdateGuestRequest struct {
	Status     *domain.GuestStatus `json:"status"`
	AdminNotes *string             `json:"admin_notes"`
}
