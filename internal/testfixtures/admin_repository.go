package testfixtures

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/persistence"
)

// MemoryAdminRepository keeps dashboard accounts in memory.
type MemoryAdminRepository struct {
	mu     sync.Mutex
	admins map[string]domain.AdminUser
}

// NewMemoryAdminRepository returns an empty admin repository.
func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{admins: make(map[string]domain.AdminUser)}
}

func (r *MemoryAdminRepository) Create(_ context.Context, admin *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.CreatedAt = time.Now().UTC()
	r.admins[admin.ID] = *admin
	return nil
}

func (r *MemoryAdminRepository) Update(_ context.Context, admin *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[admin.ID]; !ok {
		return persistence.ErrNotFound
	}
	r.admins[admin.ID] = *admin
	return nil
}

func (r *MemoryAdminRepository) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return &admin, nil
}

func (r *MemoryAdminRepository) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			copied := admin
			return &copied, nil
		}
	}
	return nil, persistence.ErrNotFound
}

func (r *MemoryAdminRepository) TouchLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return persistence.ErrNotFound
	}
	now := time.Now().UTC()
	admin.LastLoginAt = &now
	r.admins[id] = admin
	return nil
}
