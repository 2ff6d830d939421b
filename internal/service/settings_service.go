package service

import (
	"context"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/repository"
)

// SettingsService is the pass-through over the single wedding settings row.
type SettingsService struct {
	settings repository.EventSettingsRepository
}

// NewSettingsService constructs the service.
func NewSettingsService(settings repository.EventSettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the current settings.
func (s *SettingsService) Get(ctx context.Context) (*domain.EventSettings, error) {
	return s.settings.Get(ctx)
}

// Update applies a partial edit, stamping the acting administrator.
func (s *SettingsService) Update(ctx context.Context, update domain.EventSettingsUpdate, adminID string) (*domain.EventSettings, error) {
	return s.settings.Update(ctx, update, adminID)
}
