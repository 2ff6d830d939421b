package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rsvp-service/internal/api/dto"
	"github.com/spec-kit/rsvp-service/internal/auth"
	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/service"
	apperrors "github.com/spec-kit/rsvp-service/pkg/util"
)

// SettingsHandler exposes the wedding settings row.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetSettings GET /settings. Public: the invitation page renders from it.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventSettingsResponse(settings)})
}

// UpdateSettings PATCH /admin/settings.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateEventSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	settings, err := h.service.Update(c.Context(), domain.EventSettingsUpdate{
		GroomName:         req.GroomName,
		BrideName:         req.BrideName,
		WeddingDate:       req.WeddingDate,
		WeddingTime:       req.WeddingTime,
		CeremonyLocation:  req.CeremonyLocation,
		CeremonyAddress:   req.CeremonyAddress,
		ReceptionLocation: req.ReceptionLocation,
		ReceptionAddress:  req.ReceptionAddress,
		InvitationMessage: req.InvitationMessage,
		DressCode:         req.DressCode,
		RSVPDeadline:      req.RSVPDeadline,
	}, principal.Admin.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventSettingsResponse(settings)})
}
