package reagent

import (
	"context"
	"errors"
	"fmt"

	"lab-inventory/feature/reagent/models"
	"lab-inventory/feature/record"
	recordmodels "lab-inventory/feature/record/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrBatchNotFound is returned when a stock-out names an unknown batch.
	ErrBatchNotFound = errors.New("batch not found")
	// ErrInvalidAmount is returned when a stock-out amount is not positive or
	// exceeds the batch's remaining stock. No partial deduction is performed.
	ErrInvalidAmount = errors.New("invalid or excessive quantity")
)

// Service implements the reagent stock reconciliation.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	recorder *record.Recorder
}

// NewService creates a new reagent service.
func NewService(db *gorm.DB, logger *zap.Logger, recorder *record.Recorder) *Service {
	return &Service{db: db, logger: logger, recorder: recorder}
}

// List returns all reagents ordered by name with their batches nested.
func (s *Service) List(ctx context.Context) ([]models.Reagent, error) {
	var reagents []models.Reagent
	err := s.db.WithContext(ctx).
		Preload("Batches").
		Order("name ASC").
		Find(&reagents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reagents: %w", err)
	}
	return reagents, nil
}

// StockInResult reports what a stock-in did.
type StockInResult struct {
	ReagentID string
	BatchID   string
	// Merged is true when the stock folded into an existing batch.
	Merged bool
	// TotalIn is the stock delta in test-units (containers x tests-per-unit).
	TotalIn int
}

// StockIn folds new stock into the inventory with merge-or-create semantics:
// the reagent row is found by name and its descriptive columns overwritten
// (or the row created), then the batch whose full descriptive key matches is
// incremented (or a new batch created). The whole sequence runs in one
// transaction; the audit record is appended only after it commits.
func (s *Service) StockIn(ctx context.Context, req StockInRequest) (*StockInResult, error) {
	category := req.Category
	if category == "" {
		category = models.DefaultCategory
	}

	result := StockInResult{TotalIn: req.Qty * req.BatchDetails.TestsPerUnit}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Find or create the reagent identity row.
		var reagent models.Reagent
		err := tx.Where("name = ?", req.Name).First(&reagent).Error
		switch {
		case err == nil:
			// Full replace of the descriptive columns, not a partial patch.
			updates := map[string]any{
				"article_no":   req.ArticleNo,
				"manufacturer": req.Manufacturer,
				"category":     category,
			}
			if err := tx.Model(&reagent).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update reagent: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			reagent = models.Reagent{
				Name:         req.Name,
				ArticleNo:    req.ArticleNo,
				Manufacturer: req.Manufacturer,
				Category:     category,
			}
			if err := tx.Create(&reagent).Error; err != nil {
				return fmt.Errorf("failed to create reagent: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up reagent: %w", err)
		}
		result.ReagentID = reagent.ID

		// Merge into an existing batch only when every descriptive field matches.
		// Map conditions so empty strings still participate in the key.
		d := req.BatchDetails
		var batch models.ReagentBatch
		err = tx.Where(map[string]any{
			"reagent_id":     reagent.ID,
			"batch_no":       d.BatchNo,
			"prod_date":      d.ProdDate,
			"exp_date":       d.ExpDate,
			"tests_per_unit": d.TestsPerUnit,
			"location":       d.Location,
			"temp":           d.Temp,
		}).First(&batch).Error
		switch {
		case err == nil:
			result.Merged = true
			result.BatchID = batch.ID
			err := tx.Model(&batch).
				Update("total_tests", gorm.Expr("total_tests + ?", result.TotalIn)).Error
			if err != nil {
				return fmt.Errorf("failed to merge batch stock: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			batch = models.ReagentBatch{
				ReagentID:    reagent.ID,
				BatchNo:      d.BatchNo,
				ProdDate:     d.ProdDate,
				ExpDate:      d.ExpDate,
				TotalTests:   result.TotalIn,
				TestsPerUnit: d.TestsPerUnit,
				Location:     d.Location,
				Temp:         d.Temp,
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to create batch: %w", err)
			}
			result.BatchID = batch.ID
		default:
			return fmt.Errorf("failed to look up batch: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("new batch created, %d container(s)", req.Qty)
	if result.Merged {
		notes = fmt.Sprintf("merged %d container(s) into existing batch", req.Qty)
	}
	s.recorder.Append(ctx, record.Entry{
		Type:          recordmodels.TypeStockIn,
		ItemType:      recordmodels.ItemReagent,
		Name:          req.Name,
		BatchOrSerial: req.BatchDetails.BatchNo,
		Qty:           result.TotalIn,
		Operator:      req.Operator,
		Notes:         notes,
	})

	return &result, nil
}

// StockOut removes stock from one batch, resolved by id. The deduction is
// all-or-nothing: an amount outside (0, remaining] is rejected without any
// state change, and a batch drained to exactly zero is deleted rather than
// kept at zero stock.
func (s *Service) StockOut(ctx context.Context, req StockOutRequest) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch models.ReagentBatch
		err := tx.Where("id = ?", req.BatchID).First(&batch).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBatchNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up batch: %w", err)
		}

		if req.Amount <= 0 || req.Amount > batch.TotalTests {
			return ErrInvalidAmount
		}

		remaining := batch.TotalTests - req.Amount
		if remaining > 0 {
			if err := tx.Model(&batch).Update("total_tests", remaining).Error; err != nil {
				return fmt.Errorf("failed to deduct batch stock: %w", err)
			}
			return nil
		}

		if err := tx.Delete(&batch).Error; err != nil {
			return fmt.Errorf("failed to delete drained batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The audit row keeps the caller-supplied display fields; it is a snapshot
	// of what the operator saw, not a re-fetch.
	s.recorder.Append(ctx, record.Entry{
		Type:          recordmodels.TypeStockOut,
		ItemType:      recordmodels.ItemReagent,
		Name:          req.ReagentName,
		BatchOrSerial: req.BatchNo,
		Qty:           req.Amount,
		Operator:      req.User,
		Notes:         req.Purpose,
	})

	return nil
}
