package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/persistence"
)

// EventSettingsRepository manages the single wedding settings row.
type EventSettingsRepository interface {
	Get(ctx context.Context) (*domain.EventSettings, error)
	Update(ctx context.Context, update domain.EventSettingsUpdate, updatedBy string) (*domain.EventSettings, error)
}

type eventSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewEventSettingsRepository constructs repository.
func NewEventSettingsRepository(pool *pgxpool.Pool) EventSettingsRepository {
	return &eventSettingsRepository{pool: pool}
}

const settingsColumns = `id, groom_name, bride_name, wedding_date, wedding_time,
               ceremony_location, ceremony_address, reception_location, reception_address,
               invitation_message, dress_code, rsvp_deadline, created_at, updated_at, updated_by`

func (r *eventSettingsRepository) Get(ctx context.Context) (*domain.EventSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM event_settings LIMIT 1`
	settings, err := r.scanSettings(ctx, query)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *eventSettingsRepository) Update(ctx context.Context, update domain.EventSettingsUpdate, updatedBy string) (*domain.EventSettings, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.GroomName != nil {
		appendSet("groom_name", *update.GroomName)
	}
	if update.BrideName != nil {
		appendSet("bride_name", *update.BrideName)
	}
	if update.WeddingDate != nil {
		appendSet("wedding_date", *update.WeddingDate)
	}
	if update.WeddingTime != nil {
		appendSet("wedding_time", *update.WeddingTime)
	}
	if update.CeremonyLocation != nil {
		appendSet("ceremony_location", *update.CeremonyLocation)
	}
	if update.CeremonyAddress != nil {
		appendSet("ceremony_address", *update.CeremonyAddress)
	}
	if update.ReceptionLocation != nil {
		appendSet("reception_location", *update.ReceptionLocation)
	}
	if update.ReceptionAddress != nil {
		appendSet("reception_address", *update.ReceptionAddress)
	}
	if update.InvitationMessage != nil {
		appendSet("invitation_message", *update.InvitationMessage)
	}
	if update.DressCode != nil {
		appendSet("dress_code", *update.DressCode)
	}
	if update.RSVPDeadline != nil {
		appendSet("rsvp_deadline", *update.RSVPDeadline)
	}
	appendSet("updated_by", updatedBy)

	query := fmt.Sprintf(`
        UPDATE event_settings SET %s
        WHERE id = (SELECT id FROM event_settings LIMIT 1)
        RETURNING %s`, strings.Join(sets, ", "), settingsColumns)

	return r.scanSettings(ctx, query, args...)
}

func (r *eventSettingsRepository) scanSettings(ctx context.Context, query string, args ...any) (*domain.EventSettings, error) {
	var s domain.EventSettings
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID,
		&s.GroomName,
		&s.BrideName,
		&s.WeddingDate,
		&s.WeddingTime,
		&s.CeremonyLocation,
		&s.CeremonyAddress,
		&s.ReceptionLocation,
		&s.ReceptionAddress,
		&s.InvitationMessage,
		&s.DressCode,
		&s.RSVPDeadline,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.UpdatedBy,
	); err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return &s, nil
}
