package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rsvp-service/internal/api/device"
	"github.com/spec-kit/rsvp-service/internal/api/dto"
	"github.com/spec-kit/rsvp-service/internal/rsvp"
	"github.com/spec-kit/rsvp-service/internal/service"
	apperrors "github.com/spec-kit/rsvp-service/pkg/util"
)

// RSVPHandler exposes the guest-facing wizard endpoints.
type RSVPHandler struct {
	service *service.RSVPService
}

// NewRSVPHandler constructs handler.
func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{service: rsvpService}
}

// Start POST /rsvp/start.
func (h *RSVPHandler) Start(c *fiber.Ctx) error {
	state, err := h.service.Start(c.Context(), device.FromContext(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewWizardStateResponse(state)})
}

// Current GET /rsvp.
func (h *RSVPHandler) Current(c *fiber.Ctx) error {
	state, err := h.service.Current(c.Context(), device.FromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWizardStateResponse(state)})
}

// Next POST /rsvp/next.
func (h *RSVPHandler) Next(c *fiber.Ctx) error {
	var req dto.WizardFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	state, err := h.service.Advance(c.Context(), device.FromContext(c), req)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewWizardStateResponse(state)})
}

// Back POST /rsvp/back.
func (h *RSVPHandler) Back(c *fiber.Ctx) error {
	state, err := h.service.Back(c.Context(), device.FromContext(c))
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewWizardStateResponse(state)})
}

// Submit POST /rsvp/submit.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req dto.WizardFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	state, guest, err := h.service.Submit(c.Context(), device.FromContext(c), req)
	if err != nil {
		return wizardError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"state": dto.NewWizardStateResponse(state),
		"guest": dto.NewGuestResponse(guest),
	}})
}

// Unlocked GET /rsvp/unlocked.
func (h *RSVPHandler) Unlocked(c *fiber.Ctx) error {
	unlocked, err := h.service.Unlocked(c.Context(), device.FromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UnlockResponse{Unlocked: unlocked}})
}

func wizardError(err error) error {
	var validation *rsvp.ValidationError
	switch {
	case errors.As(err, &validation):
		return apperrors.NewValidationError(validation.Error(), map[string]any{"field": validation.Field})
	case errors.Is(err, service.ErrSubmissionInFlight):
		return apperrors.NewConflict("a submission is already in progress", nil)
	case errors.Is(err, rsvp.ErrFlowFinished),
		errors.Is(err, rsvp.ErrAtFirstStep),
		errors.Is(err, rsvp.ErrNotAtMessage):
		return apperrors.NewValidationError(err.Error(), nil)
	default:
		return err
	}
}
