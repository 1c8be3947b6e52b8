package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Equipment is one registered asset. Name and serial number are immutable
// after creation. A serialized asset is inherently a singleton, so quantity
// is forced to 1 whenever a serial number is present. Optional fields are
// stored as NULL, never as empty strings.
type Equipment struct {
	ID              string           `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	Manufacturer    string           `json:"manufacturer"`
	Model           string           `json:"model"`
	SerialNo        *string          `gorm:"column:serial_no;uniqueIndex" json:"serial_no"`
	Quantity        int              `json:"quantity"`
	Location        string           `json:"location"`
	Status          string           `json:"status"`
	PurchaseDate    *string          `gorm:"column:purchase_date" json:"purchase_date"`
	DeploymentDate  *string          `gorm:"column:deployment_date" json:"deployment_date"`
	WarrantyDate    *string          `gorm:"column:warranty_date" json:"warranty_date"`
	PersonInCharge  string           `gorm:"column:person_in_charge" json:"person_in_charge"`
	CreatedAt       time.Time        `gorm:"index" json:"created_at"`
	MaintenanceLogs []MaintenanceLog `gorm:"foreignKey:EquipmentID" json:"maintenance_logs"`
}

// TableName overrides the table name.
func (Equipment) TableName() string {
	return "equipment"
}

// BeforeCreate assigns a uuid primary key.
func (e *Equipment) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// DisplayIdentifier is the identifier used in audit records: the serial
// number when present, otherwise the model.
func (e Equipment) DisplayIdentifier() string {
	if e.SerialNo != nil && *e.SerialNo != "" {
		return *e.SerialNo
	}
	return e.Model
}

// MaintenanceLog is one append-only maintenance entry under an equipment row.
type MaintenanceLog struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID string    `gorm:"type:uuid;index;not null" json:"equipment_id"`
	LogDate     string    `gorm:"column:log_date" json:"log_date"`
	LogType     string    `gorm:"column:log_type" json:"log_type"`
	Notes       string    `json:"notes"`
	Operator    string    `json:"operator"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}

// BeforeCreate assigns a uuid primary key.
func (m *MaintenanceLog) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
