package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategory is assigned when a stock-in omits the category.
const DefaultCategory = "uncategorized"

// Reagent is the identity row for a reagent, deduplicated by name. The
// descriptive columns are overwritten wholesale on every stock-in of the same
// name (last write wins). Reagents are never deleted.
type Reagent struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"uniqueIndex;not null" json:"name"`
	ArticleNo    string         `gorm:"column:article_no" json:"article_no"`
	Manufacturer string         `json:"manufacturer"`
	Category     string         `json:"category"`
	CreatedAt    time.Time      `json:"created_at"`
	Batches      []ReagentBatch `gorm:"foreignKey:ReagentID" json:"reagent_batches"`
}

// TableName overrides the table name.
func (Reagent) TableName() string {
	return "reagents"
}

// BeforeCreate assigns a uuid primary key.
func (r *Reagent) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReagentBatch is one stock counter under a reagent. Two stock-ins merge into
// the same batch only when batch number, production date, expiry date,
// tests-per-unit, location and temperature all match. A batch is deleted the
// moment stock-out drains it; a zero-stock row is never persisted.
//
// Dates are stored as ISO "YYYY-MM-DD" strings, which order correctly under
// plain string comparison.
type ReagentBatch struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ReagentID    string    `gorm:"type:uuid;index;not null" json:"reagent_id"`
	BatchNo      string    `gorm:"column:batch_no" json:"batch_no"`
	ProdDate     string    `gorm:"column:prod_date" json:"prod_date"`
	ExpDate      string    `gorm:"column:exp_date;index" json:"exp_date"`
	TotalTests   int       `gorm:"column:total_tests" json:"total_tests"`
	TestsPerUnit int       `gorm:"column:tests_per_unit" json:"tests_per_unit"`
	Location     string    `json:"location"`
	Temp         string    `json:"temp"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (ReagentBatch) TableName() string {
	return "reagent_batches"
}

// BeforeCreate assigns a uuid primary key.
func (b *ReagentBatch) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
