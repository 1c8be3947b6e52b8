package record

import (
	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audit records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the record routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/records")
	group.Get("/", h.HandleListRecords)
	group.Get("/export", h.HandleExportRecords)
}

// HandleListRecords returns all audit records, newest first.
// @Summary List Records
// @Description Get all audit records ordered by time descending.
// @Tags records
// @Produce json
// @Success 200 {array} models.Record "Records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/records [get]
func (h *Handler) HandleListRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Record listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleExportRecords streams an xlsx export of all audit records.
// @Summary Export Records
// @Description Download all audit records as an xlsx workbook. When archive storage is enabled the workbook is also stored in the bucket.
// @Tags records
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/records/export [get]
func (h *Handler) HandleExportRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	export, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Record export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Name+`"`)
	return c.Send(export.Content)
}
