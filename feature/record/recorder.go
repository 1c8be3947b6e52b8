package record

import (
	"context"

	"lab-inventory/feature/record/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry describes one audit record to append.
type Entry struct {
	Type          string
	ItemType      string
	Name          string
	BatchOrSerial string
	Qty           int
	Operator      string
	Notes         string
}

// Recorder appends audit records. The append is best-effort: a failed write is
// logged and never propagated, so an audit failure cannot fail or roll back the
// mutation it describes.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a new audit recorder.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Append writes one audit record for a completed mutation.
func (r *Recorder) Append(ctx context.Context, e Entry) {
	rec := models.Record{
		Type:          e.Type,
		ItemType:      e.ItemType,
		Name:          e.Name,
		BatchOrSerial: e.BatchOrSerial,
		Qty:           e.Qty,
		Operator:      e.Operator,
		Notes:         e.Notes,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.logger.Warn("Failed to append audit record",
			zap.String("type", e.Type),
			zap.String("name", e.Name),
			zap.Error(err),
		)
	}
}
