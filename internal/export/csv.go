// Package export serializes guest lists for download from the dashboard.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// CSVHeader is the fixed export header row.
const CSVHeader = "guest_id,name,email,phone,status,party_size,created_at"

// CSVFilename is the suggested download filename.
const CSVFilename = "guests.csv"

// GuestsCSV renders a guest list as CSV: header row plus one row per guest,
// in input order. Only the name field is quoted, with internal quotes
// doubled; every other field is emitted as-is. An empty list yields just
// the header.
func GuestsCSV(guests []domain.Guest) string {
	lines := make([]string, 0, len(guests)+1)
	lines = append(lines, CSVHeader)
	for _, g := range guests {
		lines = append(lines, strings.Join([]string{
			g.ID,
			quoteName(g.Name),
			stringOrEmpty(g.Email),
			stringOrEmpty(g.Phone),
			string(g.Status),
			strconv.Itoa(g.PartySize),
			g.CreatedAt.Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func quoteName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
