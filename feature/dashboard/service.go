package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	reagentmodels "lab-inventory/feature/reagent/models"
	recordmodels "lab-inventory/feature/record/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// expiryWindowDays is the look-ahead for the expiring-soon list.
	expiryWindowDays = 30
	// maxEntries caps both dashboard lists.
	maxEntries = 5

	dateLayout = "2006-01-02"

	// unknownReagent is surfaced when a batch's parent reagent row is
	// missing; an orphaned batch must still appear on the dashboard.
	unknownReagent = "unknown reagent"
)

// Summary is the dashboard payload.
type Summary struct {
	RecentRecords []recordmodels.Record `json:"recentRecords"`
	ExpiringSoon  []ExpiringBatch       `json:"expiringSoon"`
}

// ExpiringBatch is one entry of the expiring-soon list.
type ExpiringBatch struct {
	ReagentName string   `json:"reagentName"`
	Batch       BatchRef `json:"batch"`
	DaysLeft    int      `json:"daysLeft"`
}

// BatchRef identifies the batch to the front end.
type BatchRef struct {
	BatchNo string `json:"batchNo"`
}

// Service aggregates the dashboard summary.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new dashboard service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Summary returns the recent activity feed and the batches expiring within
// the next 30 days. Any store error fails the whole call; there is no
// partial result.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	summary := Summary{
		RecentRecords: []recordmodels.Record{},
		ExpiringSoon:  []ExpiringBatch{},
	}

	err := s.db.WithContext(ctx).
		Order("time DESC").
		Limit(maxEntries).
		Find(&summary.RecentRecords).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent records: %w", err)
	}

	expiring, err := s.expiringSoon(ctx)
	if err != nil {
		return nil, err
	}
	summary.ExpiringSoon = expiring

	return &summary, nil
}

func (s *Service) expiringSoon(ctx context.Context) ([]ExpiringBatch, error) {
	today, _ := time.Parse(dateLayout, s.now().Format(dateLayout))
	windowEnd := today.AddDate(0, 0, expiryWindowDays)

	// ISO date strings order correctly under string comparison.
	var batches []reagentmodels.ReagentBatch
	err := s.db.WithContext(ctx).
		Where("exp_date >= ? AND exp_date <= ?",
			today.Format(dateLayout), windowEnd.Format(dateLayout)).
		Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load expiring batches: %w", err)
	}

	names, err := s.reagentNames(ctx, batches)
	if err != nil {
		return nil, err
	}

	entries := make([]ExpiringBatch, 0, len(batches))
	for _, batch := range batches {
		expDate, err := time.Parse(dateLayout, batch.ExpDate)
		if err != nil {
			s.logger.Warn("Skipping batch with unparseable expiry date",
				zap.String("batch_id", batch.ID),
				zap.String("exp_date", batch.ExpDate),
			)
			continue
		}

		name, ok := names[batch.ReagentID]
		if !ok {
			name = unknownReagent
		}

		entries = append(entries, ExpiringBatch{
			ReagentName: name,
			Batch:       BatchRef{BatchNo: batch.BatchNo},
			DaysLeft:    int(expDate.Sub(today).Hours() / 24),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysLeft < entries[j].DaysLeft
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	return entries, nil
}

// reagentNames resolves the owning reagent name for each batch in one query.
func (s *Service) reagentNames(ctx context.Context, batches []reagentmodels.ReagentBatch) (map[string]string, error) {
	ids := make([]string, 0, len(batches))
	seen := make(map[string]bool, len(batches))
	for _, b := range batches {
		if !seen[b.ReagentID] {
			seen[b.ReagentID] = true
			ids = append(ids, b.ReagentID)
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var reagents []reagentmodels.Reagent
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&reagents).Error; err != nil {
		return nil, fmt.Errorf("failed to load reagent names: %w", err)
	}

	names := make(map[string]string, len(reagents))
	for _, r := range reagents {
		names[r.ID] = r.Name
	}
	return names, nil
}
