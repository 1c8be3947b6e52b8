package equipment

import (
	"context"
	"errors"
	"fmt"

	"lab-inventory/feature/equipment/models"
	"lab-inventory/feature/record"
	recordmodels "lab-inventory/feature/record/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrNotFound is returned when an equipment id does not resolve.
	ErrNotFound = errors.New("equipment not found")
	// ErrSerialExists is returned when a registration reuses a serial number.
	ErrSerialExists = errors.New("serial number already registered")
)

// Service implements equipment registration, edits and maintenance logging.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	recorder *record.Recorder
}

// NewService creates a new equipment service.
func NewService(db *gorm.DB, logger *zap.Logger, recorder *record.Recorder) *Service {
	return &Service{db: db, logger: logger, recorder: recorder}
}

// List returns all equipment newest first with maintenance logs nested.
func (s *Service) List(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := s.db.WithContext(ctx).
		Preload("MaintenanceLogs").
		Order("created_at DESC").
		Find(&equipment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return equipment, nil
}

// Register creates a new equipment row. A supplied serial number must be
// globally unique and forces the quantity to 1; without one the quantity
// defaults to the caller's value or 1.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Equipment, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if req.SerialNo != "" {
		quantity = 1
	}

	equip := models.Equipment{
		Name:           req.Name,
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		SerialNo:       nilIfEmpty(req.SerialNo),
		Quantity:       quantity,
		Location:       req.Location,
		Status:         req.Status,
		PurchaseDate:   nilIfEmpty(req.PurchaseDate),
		DeploymentDate: nilIfEmpty(req.DeploymentDate),
		WarrantyDate:   nilIfEmpty(req.WarrantyDate),
		PersonInCharge: req.PersonInCharge,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.SerialNo != "" {
			var count int64
			err := tx.Model(&models.Equipment{}).
				Where("serial_no = ?", req.SerialNo).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check serial number: %w", err)
			}
			if count > 0 {
				return ErrSerialExists
			}
		}

		if err := tx.Create(&equip).Error; err != nil {
			return fmt.Errorf("failed to create equipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Append(ctx, record.Entry{
		Type:          recordmodels.TypeRegister,
		ItemType:      recordmodels.ItemEquipment,
		Name:          equip.Name,
		BatchOrSerial: equip.DisplayIdentifier(),
		Qty:           equip.Quantity,
		Operator:      req.Operator,
	})

	return &equip, nil
}

// Edit updates the mutable field set of one equipment row. Absent optional
// date fields clear their columns; name and serial number are untouched.
func (s *Service) Edit(ctx context.Context, id string, req EditRequest) (*models.Equipment, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var equip models.Equipment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&equip).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up equipment: %w", err)
		}

		// Map updates so cleared optional fields are written as NULL.
		updates := map[string]any{
			"manufacturer":     req.Manufacturer,
			"location":         req.Location,
			"status":           req.Status,
			"quantity":         quantity,
			"purchase_date":    nilIfEmpty(req.PurchaseDate),
			"deployment_date":  nilIfEmpty(req.DeploymentDate),
			"warranty_date":    nilIfEmpty(req.WarrantyDate),
			"person_in_charge": req.PersonInCharge,
		}
		if err := tx.Model(&equip).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update equipment: %w", err)
		}

		// Re-read so the caller and the audit record see the stored row.
		if err := tx.Where("id = ?", id).First(&equip).Error; err != nil {
			return fmt.Errorf("failed to reload equipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Append(ctx, record.Entry{
		Type:          recordmodels.TypeEdit,
		ItemType:      recordmodels.ItemEquipment,
		Name:          equip.Name,
		BatchOrSerial: equip.DisplayIdentifier(),
		Qty:           equip.Quantity,
		Operator:      req.Operator,
		Notes:         "information updated",
	})

	return &equip, nil
}

// AddMaintenance appends one maintenance log entry under an equipment row.
func (s *Service) AddMaintenance(ctx context.Context, id string, req MaintenanceRequest) (*models.MaintenanceLog, error) {
	var equip models.Equipment
	logEntry := models.MaintenanceLog{
		EquipmentID: id,
		LogDate:     req.Date,
		LogType:     req.Type,
		Notes:       req.Notes,
		Operator:    req.Operator,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&equip).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up equipment: %w", err)
		}

		if err := tx.Create(&logEntry).Error; err != nil {
			return fmt.Errorf("failed to create maintenance log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Append(ctx, record.Entry{
		Type:          recordmodels.TypeMaintenance,
		ItemType:      recordmodels.ItemEquipment,
		Name:          equip.Name,
		BatchOrSerial: equip.DisplayIdentifier(),
		Qty:           1,
		Operator:      req.Operator,
		Notes:         fmt.Sprintf("%s: %s", req.Type, req.Notes),
	})

	return &logEntry, nil
}
