package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/persistence"
	"github.com/spec-kit/rsvp-service/internal/stats"
)

// GuestRepository encapsulates RSVP persistence.
type GuestRepository interface {
	Insert(ctx context.Context, input domain.GuestInput) (*domain.Guest, error)
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	ListWithFilter(ctx context.Context, criteria domain.GuestFilterCriteria) ([]domain.Guest, error)
	Update(ctx context.Context, id string, update domain.GuestUpdate) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
	AggregateStats(ctx context.Context) (*domain.GuestStatistics, error)
	AggregateDistribution(ctx context.Context) ([]domain.GuestDistribution, error)
}

type guestRepository struct {
	pool *pgxpool.Pool
}

// NewGuestRepository instantiates repository.
func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &guestRepository{pool: pool}
}

const guestColumns = `id, name, email, phone, status, party_size, going_to_reception,
               dietary_restrictions, message, admin_notes, response_source,
               confirmed_at, created_at, updated_at`

func (r *guestRepository) Insert(ctx context.Context, input domain.GuestInput) (*domain.Guest, error) {
	const query = `
        INSERT INTO rsvps (name, email, phone, status, party_size, going_to_reception,
                           dietary_restrictions, message, response_source, confirmed_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, CASE WHEN $4 = 'yes' THEN NOW() END)
        RETURNING ` + guestColumns
	row := r.pool.QueryRow(ctx, query,
		strings.TrimSpace(input.Name),
		input.Email,
		input.Phone,
		input.Status,
		input.PartySize,
		input.GoingToReception,
		input.DietaryRestrictions,
		input.Message,
		input.ResponseSource,
	)
	guest, err := scanGuest(row)
	if err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return guest, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM rsvps WHERE id=$1`
	guest, err := scanGuest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return guest, nil
}

func (r *guestRepository) ListWithFilter(ctx context.Context, criteria domain.GuestFilterCriteria) ([]domain.Guest, error) {
	criteria = criteria.Normalized()

	base := `SELECT ` + guestColumns + ` FROM rsvps`
	clauses := []string{"1=1"}
	args := []any{}

	if term := strings.TrimSpace(criteria.SearchTerm); term != "" {
		args = append(args, "%"+strings.ToLower(term)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(COALESCE(email, '')) LIKE %s)", placeholder, placeholder))
	}
	if criteria.Status != domain.StatusFilterAll {
		args = append(args, string(criteria.Status))
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY %s %s, id ASC`,
		base, strings.Join(clauses, " AND "), sortColumn(criteria.SortBy), sortDirection(criteria.SortOrder))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, persistence.ClassifyError(err)
	}
	defer rows.Close()
	guests, err := scanGuests(rows)
	if err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return guests, nil
}

func (r *guestRepository) Update(ctx context.Context, id string, update domain.GuestUpdate) (*domain.Guest, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}

	if update.Status != nil {
		args = append(args, *update.Status)
		placeholder := fmt.Sprintf("$%d", len(args))
		sets = append(sets, fmt.Sprintf("status=%s", placeholder))
		// confirmed_at records the first transition into yes
		sets = append(sets, fmt.Sprintf(
			"confirmed_at=CASE WHEN %s = 'yes' AND status <> 'yes' THEN NOW() ELSE confirmed_at END", placeholder))
	}
	if update.AdminNotes != nil {
		args = append(args, *update.AdminNotes)
		sets = append(sets, fmt.Sprintf("admin_notes=$%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE rsvps SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), guestColumns)

	guest, err := scanGuest(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return guest, nil
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM rsvps WHERE id=$1`, id)
	if err != nil {
		return persistence.ClassifyError(err)
	}
	if cmd.RowsAffected() == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *guestRepository) AggregateStats(ctx context.Context) (*domain.GuestStatistics, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'yes'),
               COUNT(*) FILTER (WHERE status = 'maybe'),
               COUNT(*) FILTER (WHERE status = 'no'),
               COALESCE(SUM(party_size) FILTER (WHERE status = 'yes'), 0)
        FROM rsvps`
	var s domain.GuestStatistics
	if err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalGuests,
		&s.ConfirmedGuests,
		&s.PendingGuests,
		&s.DeclinedGuests,
		&s.TotalExpectedAttendees,
	); err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return &s, nil
}

func (r *guestRepository) AggregateDistribution(ctx context.Context) ([]domain.GuestDistribution, error) {
	const query = `
        SELECT COUNT(*) FILTER (WHERE status = 'yes'),
               COUNT(*) FILTER (WHERE status = 'no'),
               COUNT(*) FILTER (WHERE status = 'maybe')
        FROM rsvps`
	var yes, no, maybe int
	if err := r.pool.QueryRow(ctx, query).Scan(&yes, &no, &maybe); err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return stats.DistributionFromCounts(yes, no, maybe), nil
}

func sortColumn(field domain.SortField) string {
	switch field {
	case domain.SortByName:
		return "name"
	case domain.SortByStatus:
		return "status"
	default:
		return "created_at"
	}
}

func sortDirection(order domain.SortOrder) string {
	if order == domain.SortAsc {
		return "ASC"
	}
	return "DESC"
}

func scanGuest(row pgx.Row) (*domain.Guest, error) {
	var guest domain.Guest
	if err := row.Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.Status,
		&guest.PartySize,
		&guest.GoingToReception,
		&guest.DietaryRestrictions,
		&guest.Message,
		&guest.AdminNotes,
		&guest.ResponseSource,
		&guest.ConfirmedAt,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &guest, nil
}

func scanGuests(rows pgx.Rows) ([]domain.Guest, error) {
	var result []domain.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *guest)
	}
	return result, rows.Err()
}
