package record

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"lab-inventory/core/storage"
	"lab-inventory/feature/record/models"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const exportSheet = "Records"

// Service handles record queries and exports.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	store  storage.Client // nil when archival is disabled
	bucket string
}

// NewService creates a new record service. store may be nil; exports then skip
// the archival step.
func NewService(db *gorm.DB, logger *zap.Logger, store storage.Client, bucket string) *Service {
	return &Service{db: db, logger: logger, store: store, bucket: bucket}
}

// List returns every audit record, newest first.
func (s *Service) List(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).Order("time DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// ExportFile is a rendered spreadsheet ready to stream to the caller.
type ExportFile struct {
	Name    string
	Content []byte
}

// Export renders all records into an xlsx workbook. When archive storage is
// configured the workbook is also uploaded under exports/; an upload failure
// only logs a warning, the export itself still succeeds.
func (s *Service) Export(ctx context.Context) (*ExportFile, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheet)

	header := []any{"Time", "Type", "Item", "Name", "Batch/Serial", "Qty", "Operator", "Notes"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, rec := range records {
		row := []any{
			rec.Time.Format(time.RFC3339),
			rec.Type,
			rec.ItemType,
			rec.Name,
			rec.BatchOrSerial,
			rec.Qty,
			rec.Operator,
			rec.Notes,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	export := &ExportFile{
		Name:    fmt.Sprintf("records-%s.xlsx", time.Now().Format("20060102-150405")),
		Content: buf.Bytes(),
	}

	s.archive(ctx, export)

	return export, nil
}

// archive uploads the export to the configured bucket, best-effort.
func (s *Service) archive(ctx context.Context, export *ExportFile) {
	if s.store == nil {
		return
	}

	objectName := "exports/" + export.Name
	_, err := s.store.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(export.Content), int64(len(export.Content)),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"})
	if err != nil {
		s.logger.Warn("Failed to archive export",
			zap.String("object", objectName),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Archived export", zap.String("object", objectName))
}
