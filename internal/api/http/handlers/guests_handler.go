package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rsvp-service/internal/api/dto"
	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/export"
	"github.com/spec-kit/rsvp-service/internal/persistence"
	"github.com/spec-kit/rsvp-service/internal/service"
	apperrors "github.com/spec-kit/rsvp-service/pkg/util"
)

// GuestsHandler manages dashboard guest endpoints.
type GuestsHandler struct {
	service *service.GuestService
}

// NewGuestsHandler constructs handler.
func NewGuestsHandler(guestService *service.GuestService) *GuestsHandler {
	return &GuestsHandler{service: guestService}
}

// ListGuests GET /admin/guests.
func (h *GuestsHandler) ListGuests(c *fiber.Ctx) error {
	guests, err := h.service.List(c.Context(), parseGuestFilter(c))
	if err != nil {
		return err
	}
	items := make([]dto.GuestResponse, 0, len(guests))
	for i := range guests {
		items = append(items, dto.NewGuestResponse(&guests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetGuest GET /admin/guests/:id.
func (h *GuestsHandler) GetGuest(c *fiber.Ctx) error {
	guest, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return apperrors.NewNotFound("guest", map[string]any{"id": c.Params("id")})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// CreateGuest POST /admin/guests.
func (h *GuestsHandler) CreateGuest(c *fiber.Ctx) error {
	var req dto.CreateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	guest, err := h.service.CreateManual(c.Context(), domain.GuestInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Status:         req.Status,
		PartySize:      req.PartySize,
		Message:        req.Message,
		ResponseSource: req.ResponseSource,
	})
	if err != nil {
		return guestInputError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// UpdateGuest PATCH /admin/guests/:id.
func (h *GuestsHandler) UpdateGuest(c *fiber.Ctx) error {
	var req dto.UpdateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	guest, err := h.service.Update(c.Context(), c.Params("id"), domain.GuestUpdate{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return apperrors.NewNotFound("guest", map[string]any{"id": c.Params("id")})
		}
		return guestInputError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// DeleteGuest DELETE /admin/guests/:id.
func (h *GuestsHandler) DeleteGuest(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return apperrors.NewNotFound("guest", map[string]any{"id": c.Params("id")})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// GuestStats GET /admin/guests/stats.
func (h *GuestsHandler) GuestStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// GuestDistribution GET /admin/guests/distribution.
func (h *GuestsHandler) GuestDistribution(c *fiber.Ctx) error {
	distribution, err := h.service.Distribution(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": distribution})
}

// ExportGuests GET /admin/guests/export.
func (h *GuestsHandler) ExportGuests(c *fiber.Ctx) error {
	csv, err := h.service.ExportCSV(c.Context(), parseGuestFilter(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.CSVFilename+`"`)
	return c.SendString(csv)
}

func parseGuestFilter(c *fiber.Ctx) domain.GuestFilterCriteria {
	return domain.GuestFilterCriteria{
		SearchTerm: c.Query("search"),
		Status:     domain.StatusFilter(c.Query("status", string(domain.StatusFilterAll))),
		SortBy:     domain.SortField(c.Query("sort_by", string(domain.SortByCreatedAt))),
		SortOrder:  domain.SortOrder(c.Query("sort_order", string(domain.SortDesc))),
	}.Normalized()
}

func guestInputError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrStatusRequired),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPartySize),
		errors.Is(err, domain.ErrInvalidSource):
		return apperrors.NewValidationError(err.Error(), nil)
	default:
		return err
	}
}
