// Package staterepo persists state summaries in PostgreSQL. Every commit
// appends one row; the newest row is the latest summary.
package staterepo

import (
	"time"

	"logistics/internal/core/domain/model/inventory"
)

// StateSummaryDTO is one recorded summary.
type StateSummaryDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	RecordedAt time.Time `gorm:"type:timestamptz;not null;index"`
	Warehouses int       `gorm:"type:int;not null"`
	Lines      int       `gorm:"type:int;not null"`
	Packages   int       `gorm:"type:int;not null"`
	Pallets    int       `gorm:"type:int;not null"`
}

func (StateSummaryDTO) TableName() string {
	return "state_summaries"
}

func fromDomain(summary inventory.StateSummary) StateSummaryDTO {
	return StateSummaryDTO{
		RecordedAt: summary.RecordedAt.UTC(),
		Warehouses: summary.Warehouses,
		Lines:      summary.Lines,
		Packages:   summary.Packages,
		Pallets:    summary.Pallets,
	}
}

func toDomain(dto StateSummaryDTO) inventory.StateSummary {
	return inventory.StateSummary{
		RecordedAt: dto.RecordedAt.UTC(),
		Warehouses: dto.Warehouses,
		Lines:      dto.Lines,
		Packages:   dto.Packages,
		Pallets:    dto.Pallets,
	}
}
