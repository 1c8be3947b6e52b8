package equipment

import (
	"errors"

	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for equipment.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the equipment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/equipment")
	group.Get("/", h.HandleListEquipment)
	group.Post("/", h.HandleRegisterEquipment)
	group.Put("/:id", h.HandleEditEquipment)
	group.Post("/:id/maintenance", h.HandleAddMaintenance)
}

// HandleListEquipment returns all equipment with maintenance logs nested.
// @Summary List Equipment
// @Description Get all equipment ordered by creation time descending, each with its maintenance logs.
// @Tags equipment
// @Produce json
// @Success 200 {array} models.Equipment "Equipment"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/equipment [get]
func (h *Handler) HandleListEquipment(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	equipment, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Equipment listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(equipment)
}

// HandleRegisterEquipment creates a new equipment row.
// @Summary Register Equipment
// @Description Register a new asset. A serial number must be unique and forces quantity to 1.
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body equipment.RegisterRequest true "Registration payload"
// @Success 201 {object} models.Equipment "Created"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 409 {object} map[string]string "Serial Number Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/equipment [post]
func (h *Handler) HandleRegisterEquipment(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RegisterRequest
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

	equip, err := h.service.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSerialExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Equipment registration failed", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Equipment registered", zap.String("id", equip.ID), zap.String("name", equip.Name))
	return c.Status(fiber.StatusCreated).JSON(equip)
}

// HandleEditEquipment updates the mutable fields of one equipment row.
// @Summary Edit Equipment
// @Description Update an asset's mutable fields. Name and serial number are immutable.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body equipment.EditRequest true "Edit payload"
// @Success 200 {object} models.Equipment "Updated"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/equipment/{id} [put]
func (h *Handler) HandleEditEquipment(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	var req EditRequest
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

	equip, err := h.service.Edit(c.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Equipment edit failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(equip)
}

// HandleAddMaintenance appends a maintenance log entry.
// @Summary Add Maintenance Log
// @Description Append one maintenance entry under an equipment row.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body equipment.MaintenanceRequest true "Maintenance payload"
// @Success 201 {object} models.MaintenanceLog "Created"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/equipment/{id}/maintenance [post]
func (h *Handler) HandleAddMaintenance(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	var req MaintenanceRequest
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

	logEntry, err := h.service.AddMaintenance(c.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Maintenance log failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(logEntry)
}
