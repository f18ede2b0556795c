package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

// AdminHandler exposes support cases to the back office
type AdminHandler struct {
	store storage.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ListCases returns all cases, optionally filtered by status
func (h *AdminHandler) ListCases(c *fiber.Ctx) error {
	status := c.Query("status")

	var cases []*models.SupportCase
	var err error
	if status != "" {
		cases, err = h.store.GetSupportCasesByStatus(status)
	} else {
		cases, err = h.store.GetAllSupportCases()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load cases",
		})
	}

	return c.JSON(fiber.Map{
		"count": len(cases),
		"cases": cases,
	})
}

// GetCase returns one case by its case ID
func (h *AdminHandler) GetCase(c *fiber.Ctx) error {
	sc, err := h.store.GetSupportCase(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Case not found",
		})
	}

	return c.JSON(sc)
}

// UpdateCaseRequest updates a case's workflow state
type UpdateCaseRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

// UpdateCase moves a case through the back-office workflow
func (h *AdminHandler) UpdateCase(c *fiber.Ctx) error {
	sc, err := h.store.GetSupportCase(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Case not found",
		})
	}

	var req UpdateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid update payload",
		})
	}

	if req.Status != "" {
		switch req.Status {
		case models.CaseStatusOpen, models.CaseStatusInProgress, models.CaseStatusResolved, models.CaseStatusClosed:
			sc.Status = req.Status
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown status",
			})
		}
	}

	if req.Resolution != "" {
		sc.Resolution = req.Resolution
	}

	if sc.Status == models.CaseStatusResolved && sc.ResolvedAt == nil {
		now := time.Now()
		sc.ResolvedAt = &now
	}

	if err := h.store.UpdateSupportCase(sc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update case",
		})
	}

	return c.JSON(sc)
}
