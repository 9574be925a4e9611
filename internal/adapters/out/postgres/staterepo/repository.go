package staterepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStateRepository implements ports.StateRecorder using GORM.
type GormStateRepository struct {
	db *gorm.DB
}

func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// Migrate creates the state_summaries table when it is missing.
func (r *GormStateRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&StateSummaryDTO{})
}

// Record appends a summary row.
func (r *GormStateRepository) Record(ctx context.Context, summary inventory.StateSummary) error {
	dto := fromDomain(summary)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Latest returns the newest summary. Rows recorded at the same instant are
// ordered by insertion.
func (r *GormStateRepository) Latest(ctx context.Context) (inventory.StateSummary, error) {
	var dto StateSummaryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inventory.StateSummary{}, errs.NewObjectNotFoundErrorWithCause("stateSummary", "latest", err)
		}
		return inventory.StateSummary{}, err
	}
	return toDomain(dto), nil
}

// History returns up to limit summaries, newest first.
func (r *GormStateRepository) History(ctx context.Context, limit int) ([]inventory.StateSummary, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []StateSummaryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]inventory.StateSummary, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toDomain(dto))
	}
	return out, nil
}
