package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation types stored in the record "type" column.
const (
	TypeStockIn     = "in"
	TypeStockOut    = "out"
	TypeRegister    = "equipment-register"
	TypeEdit        = "equipment-edit"
	TypeMaintenance = "equipment-maintenance"
)

// Item categories stored in the record "item_type" column.
const (
	ItemReagent   = "reagent"
	ItemEquipment = "equipment"
)

// Record is one append-only audit entry. Every mutating operation across the
// system writes exactly one. Rows capture point-in-time names and quantities,
// so the feed cannot be reconstructed from the inventory tables.
type Record struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Type          string    `gorm:"not null" json:"type"`
	ItemType      string    `gorm:"not null" json:"item_type"`
	Name          string    `json:"name"`
	BatchOrSerial string    `json:"batch_or_serial"`
	Qty           int       `json:"qty"`
	Operator      string    `json:"operator"`
	Notes         string    `json:"notes"`
	Time          time.Time `gorm:"autoCreateTime;index" json:"time"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "records"
}

// BeforeCreate assigns a uuid primary key.
func (r *Record) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
