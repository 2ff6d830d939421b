package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/persistence"
)

// AdminRepository defines persistence access for dashboard accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) error
	Update(ctx context.Context, admin *domain.AdminUser) error
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.AdminUser) error {
	const query = `
        INSERT INTO admin_users (email, full_name, role, password_hash, is_active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.Email,
		admin.FullName,
		admin.Role,
		admin.PasswordHash,
		admin.IsActive,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	return persistence.ClassifyError(err)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.AdminUser) error {
	const query = `
        UPDATE admin_users SET email=$1, full_name=$2, role=$3, password_hash=$4, is_active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		admin.Email,
		admin.FullName,
		admin.Role,
		admin.PasswordHash,
		admin.IsActive,
		admin.ID,
	)
	if err != nil {
		return persistence.ClassifyError(err)
	}
	if cmd.RowsAffected() == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	const query = adminSelect + ` WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	const query = adminSelect + ` WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login_at=NOW() WHERE id=$1`, id)
	return persistence.ClassifyError(err)
}

const adminSelect = `
        SELECT id, email, full_name, role, password_hash, is_active, last_login_at, created_at, updated_at
        FROM admin_users`

func (r *adminRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.FullName,
		&admin.Role,
		&admin.PasswordHash,
		&admin.IsActive,
		&admin.LastLoginAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, persistence.ClassifyError(err)
	}
	return &admin, nil
}
