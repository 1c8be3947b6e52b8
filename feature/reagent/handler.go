package reagent

import (
	"errors"

	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reagents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reagent routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reagents")
	group.Get("/", h.HandleListReagents)
	group.Post("/in", h.HandleStockIn)
	group.Post("/out", h.HandleStockOut)
}

// HandleListReagents returns all reagents with their batches nested.
// @Summary List Reagents
// @Description Get all reagents ordered by name, each with its batches.
// @Tags reagents
// @Produce json
// @Success 200 {array} models.Reagent "Reagents"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/reagents [get]
func (h *Handler) HandleListReagents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reagents, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Reagent listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reagents)
}

// HandleStockIn folds new stock into the inventory (merge-or-create).
// @Summary Reagent Stock-In
// @Description Register incoming reagent stock. A reagent with the same name is updated in place; a batch whose descriptive key matches is incremented, otherwise a new batch is created.
// @Tags reagents
// @Accept json
// @Produce json
// @Param request body reagent.StockInRequest true "Stock-in payload"
// @Success 201 {object} map[string]string "Message"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/reagents/in [post]
func (h *Handler) HandleStockIn(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req StockInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.StockIn(c.Context(), req)
	if err != nil {
		l.Error("Stock-in failed", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Stock-in complete",
		zap.String("name", req.Name),
		zap.Int("total_in", result.TotalIn),
		zap.Bool("merged", result.Merged),
	)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "stock-in complete",
	})
}

// HandleStockOut removes stock from one batch (deduct-or-delete).
// @Summary Reagent Stock-Out
// @Description Deduct stock from a batch by id. Draining a batch to zero deletes it.
// @Tags reagents
// @Accept json
// @Produce json
// @Param request body reagent.StockOutRequest true "Stock-out payload"
// @Success 200 {object} map[string]string "Message"
// @Failure 400 {object} map[string]string "Invalid Amount"
// @Failure 404 {object} map[string]string "Batch Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/reagents/out [post]
func (h *Handler) HandleStockOut(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req StockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.StockOut(c.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrBatchNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			l.Error("Stock-out failed", zap.String("batch_id", req.BatchID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	l.Info("Stock-out complete",
		zap.String("batch_id", req.BatchID),
		zap.Int("amount", req.Amount),
	)
	return c.JSON(fiber.Map{
		"message": "stock-out complete",
	})
}
