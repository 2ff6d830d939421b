package domain

import "time"

// EventSettings is the single-row record holding the couple's wedding
// details shown on the public site and edited from the dashboard.
type EventSettings struct {
	ID                string
	GroomName         string
	BrideName         string
	WeddingDate       time.Time
	WeddingTime       string
	CeremonyLocation  string
	CeremonyAddress   string
	ReceptionLocation string
	ReceptionAddress  string
	InvitationMessage *string
	DressCode         *string
	RSVPDeadline      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UpdatedBy         *string
}

// EventSettingsUpdate carries the editable settings fields. Nil fields are
// left untouched.
type EventSettingsUpdate struct {
	GroomName         *string
	BrideName         *string
	WeddingDate       *time.Time
	WeddingTime       *string
	CeremonyLocation  *string
	CeremonyAddress   *string
	ReceptionLocation *string
	ReceptionAddress  *string
	InvitationMessage *string
	DressCode         *string
	RSVPDeadline      *time.Time
}
