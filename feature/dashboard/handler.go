package dashboard

import (
	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/dashboard", h.HandleSummary)
}

// HandleSummary returns the dashboard summary.
// @Summary Dashboard Summary
// @Description Get the five most recent audit records and up to five batches expiring within 30 days.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Summary "Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/dashboard [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Dashboard summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
