package dto

import (
	"time"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// AdminLoginRequest payload.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest payload.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest payload.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// PasswordChangeRequest payload.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// EventSettingsResponse is the dashboard's view of the settings row.
type EventSettingsResponse struct {
	ID                string     `json:"id"`
	GroomName         string     `json:"groom_name"`
	BrideName         string     `json:"bride_name"`
	WeddingDate       time.Time  `json:"wedding_date"`
	WeddingTime       string     `json:"wedding_time"`
	CeremonyLocation  string     `json:"ceremony_location"`
	CeremonyAddress   string     `json:"ceremony_address"`
	ReceptionLocation string     `json:"reception_location"`
	ReceptionAddress  string     `json:"reception_address"`
	InvitationMessage *string    `json:"invitation_message,omitempty"`
	DressCode         *string    `json:"dress_code,omitempty"`
	RSVPDeadline      *time.Time `json:"rsvp_deadline,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewEventSettingsResponse converts settings for transport.
func NewEventSettingsResponse(settings *domain.EventSettings) EventSettingsResponse {
	return EventSettingsResponse{
		ID:                settings.ID,
		GroomName:         settings.GroomName,
		BrideName:         settings.BrideName,
		WeddingDate:       settings.WeddingDate,
		WeddingTime:       settings.WeddingTime,
		CeremonyLocation:  settings.CeremonyLocation,
		CeremonyAddress:   settings.CeremonyAddress,
		ReceptionLocation: settings.ReceptionLocation,
		ReceptionAddress:  settings.ReceptionAddress,
		InvitationMessage: settings.InvitationMessage,
		DressCode:         settings.DressCode,
		RSVPDeadline:      settings.RSVPDeadline,
		UpdatedAt:         settings.UpdatedAt,
	}
}

// UpdateEventSettingsRequest carries a partial settings edit.
type UpdateEventSettingsRequest struct {
	GroomName         *string    `json:"groom_name"`
	BrideName         *string    `json:"bride_name"`
	WeddingDate       *time.Time `json:"wedding_date"`
	WeddingTime       *string    `json:"wedding_time"`
	CeremonyLocation  *string    `json:"ceremony_location"`
	CeremonyAddress   *string    `json:"ceremony_address"`
	ReceptionLocation *string    `json:"reception_location"`
	ReceptionAddress  *string    `json:"reception_address"`
	InvitationMessage *string    `json:"invitation_message"`
	DressCode         *string    `json:"dress_code"`
	RSVPDeadline      *time.Time `json:"rsvp_deadline"`
}
