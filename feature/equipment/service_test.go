package equipment_test

import (
	"context"
	"testing"

	"lab-inventory/core/database"
	"lab-inventory/feature/equipment"
	"lab-inventory/feature/equipment/models"
	"lab-inventory/feature/record"
	recordmodels "lab-inventory/feature/record/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Equipment{}, &models.MaintenanceLog{}, &recordmodels.Record{})
	assert.NoError(t, err)

	return db
}

func newService(db *gorm.DB) *equipment.Service {
	logger := zap.NewNop()
	return equipment.NewService(db, logger, record.NewRecorder(db, logger))
}

func registerRequest() equipment.RegisterRequest {
	return equipment.RegisterRequest{
		Name:           "Centrifuge",
		Manufacturer:   "LabTech",
		Model:          "CF-900",
		SerialNo:       "SN-0001",
		Quantity:       5,
		Location:       "Room 12",
		Status:         "operational",
		PurchaseDate:   "2025-06-01",
		PersonInCharge: "carol",
		Operator:       "carol",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("SerialForcesSingleton", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		equip, err := svc.Register(ctx, registerRequest())
		assert.NoError(t, err)
		// A serialized asset is a singleton regardless of the submitted quantity.
		assert.Equal(t, 1, equip.Quantity)
		assert.NotNil(t, equip.SerialNo)
		assert.Equal(t, "SN-0001", *equip.SerialNo)

		var rec recordmodels.Record
		assert.NoError(t, db.First(&rec).Error)
		assert.Equal(t, recordmodels.TypeRegister, rec.Type)
		assert.Equal(t, recordmodels.ItemEquipment, rec.ItemType)
		assert.Equal(t, "SN-0001", rec.BatchOrSerial)
		assert.Equal(t, 1, rec.Qty)
	})

	t.Run("DuplicateSerialRejected", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		_, err := svc.Register(ctx, registerRequest())
		assert.NoError(t, err)

		_, err = svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, equipment.ErrSerialExists)

		// No second row, no second audit record.
		var count int64
		assert.NoError(t, db.Model(&models.Equipment{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, db.Model(&recordmodels.Record{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("NoSerialKeepsQuantity", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		req := registerRequest()
		req.SerialNo = ""
		equip, err := svc.Register(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, 5, equip.Quantity)
		assert.Nil(t, equip.SerialNo)

		// Without a serial the model identifies the asset in the audit row.
		var rec recordmodels.Record
		assert.NoError(t, db.First(&rec).Error)
		assert.Equal(t, "CF-900", rec.BatchOrSerial)
	})

	t.Run("QuantityDefaultsToOne", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		req := registerRequest()
		req.SerialNo = ""
		req.Quantity = 0
		equip, err := svc.Register(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, 1, equip.Quantity)
	})

	t.Run("EmptyOptionalFieldsStoredAsNull", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		req := registerRequest()
		req.SerialNo = ""
		req.PurchaseDate = ""
		equip, err := svc.Register(ctx, req)
		assert.NoError(t, err)
		assert.Nil(t, equip.SerialNo)
		assert.Nil(t, equip.PurchaseDate)
	})
}

func TestService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdatesMutableFields", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		created, err := svc.Register(ctx, registerRequest())
		assert.NoError(t, err)

		updated, err := svc.Edit(ctx, created.ID, equipment.EditRequest{
			Manufacturer:   "LabTech",
			Location:       "Room 14",
			Status:         "under maintenance",
			Quantity:       1,
			PersonInCharge: "dave",
			Operator:       "dave",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Room 14", updated.Location)
		assert.Equal(t, "under maintenance", updated.Status)
		// Immutable after registration.
		assert.Equal(t, "Centrifuge", updated.Name)
		assert.NotNil(t, updated.SerialNo)
		// The cleared purchase date is written as NULL.
		assert.Nil(t, updated.PurchaseDate)

		var rec recordmodels.Record
		assert.NoError(t, db.Where("type = ?", recordmodels.TypeEdit).First(&rec).Error)
		assert.Equal(t, "Centrifuge", rec.Name)
		assert.Equal(t, "SN-0001", rec.BatchOrSerial)
	})

	t.Run("UnknownID", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		_, err := svc.Edit(ctx, "00000000-0000-0000-0000-000000000000", equipment.EditRequest{})
		assert.ErrorIs(t, err, equipment.ErrNotFound)

		var count int64
		assert.NoError(t, db.Model(&recordmodels.Record{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestService_AddMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsLog", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		created, err := svc.Register(ctx, registerRequest())
		assert.NoError(t, err)

		logEntry, err := svc.AddMaintenance(ctx, created.ID, equipment.MaintenanceRequest{
			Date:     "2026-08-30",
			Type:     "calibration",
			Notes:    "annual rotor calibration",
			Operator: "dave",
		})
		assert.NoError(t, err)
		assert.Equal(t, created.ID, logEntry.EquipmentID)

		var rec recordmodels.Record
		assert.NoError(t, db.Where("type = ?", recordmodels.TypeMaintenance).First(&rec).Error)
		assert.Equal(t, 1, rec.Qty)
		assert.Equal(t, "calibration: annual rotor calibration", rec.Notes)
	})

	t.Run("UnknownEquipment", func(t *testing.T) {
		db := setupDB(t)
		svc := newService(db)

		_, err := svc.AddMaintenance(ctx, "00000000-0000-0000-0000-000000000000", equipment.MaintenanceRequest{
			Date: "2026-08-30", Type: "repair", Operator: "dave",
		})
		assert.ErrorIs(t, err, equipment.ErrNotFound)

		var count int64
		assert.NoError(t, db.Model(&models.MaintenanceLog{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	svc := newService(db)

	first, err := svc.Register(ctx, registerRequest())
	assert.NoError(t, err)

	second := registerRequest()
	second.Name = "Incubator"
	second.SerialNo = "SN-0002"
	_, err = svc.Register(ctx, second)
	assert.NoError(t, err)

	_, err = svc.AddMaintenance(ctx, first.ID, equipment.MaintenanceRequest{
		Date: "2026-08-30", Type: "inspection", Operator: "dave",
	})
	assert.NoError(t, err)

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	for _, equip := range list {
		if equip.ID == first.ID {
			assert.Len(t, equip.MaintenanceLogs, 1)
		}
	}
}
