package domain

// GuestStatistics is the aggregate count breakdown over all RSVPs.
// Derived, never persisted on its own.
type GuestStatistics struct {
	TotalGuests            int `json:"total_guests"`
	ConfirmedGuests        int `json:"confirmed_guests"`
	PendingGuests          int `json:"pending_guests"`
	DeclinedGuests         int `json:"declined_guests"`
	TotalExpectedAttendees int `json:"total_expected_attendees"`
}

// GuestDistribution is one (status, count) slice of the RSVP breakdown.
// Percentage is count over total, rounded to one decimal place.
type GuestDistribution struct {
	Status     GuestStatus `json:"status"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
}
