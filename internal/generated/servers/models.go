package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Request bodies.

type NewWarehouse struct {
	Name        string  `json:"name"         validate:"required"`
	MaxCapacity float64 `json:"max_capacity" validate:"gt=0"`
}

type NewLine struct {
	LineNumber   int     `json:"line_number"   validate:"gte=1"`
	MaxCapacity  float64 `json:"max_capacity"  validate:"gt=0"`
	CapacityType string  `json:"capacity_type" validate:"required,oneof=weight count"`
}

type NewPackage struct {
	PackageType string  `json:"package_type" validate:"required,oneof=loose carton"`
	QualityMark string  `json:"quality_mark" validate:"required"`
	Mass        float64 `json:"mass"         validate:"gt=0"`
}

type NewPallet struct {
	QualityMark string `json:"quality_mark" validate:"required"`
	MaxCapacity int    `json:"max_capacity" validate:"gte=1"`
}

type LineTarget struct {
	LineId openapi_types.UUID `json:"line_id" validate:"required"`
}

type PalletTarget struct {
	PalletId openapi_types.UUID `json:"pallet_id" validate:"required"`
}

// MixedQualityApproval falls back to the default number of types when MaxTypes is nil.
type MixedQualityApproval struct {
	MaxTypes *int `json:"max_types,omitempty" validate:"omitempty,gte=1"`
}

type OffloadOrderSetting struct {
	Order string `json:"order" validate:"required"`
}

// Query parameters.

type SearchPackageParams struct {
	Serial string `form:"serial" json:"serial"`
}

type SearchPalletParams struct {
	Serial string `form:"serial" json:"serial"`
}

// Response models.

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type Warehouse struct {
	Id                    openapi_types.UUID `json:"id"`
	Name                  string             `json:"name"`
	MaxCapacity           float64            `json:"max_capacity"`
	Usage                 float64            `json:"usage"`
	AvailableCapacity     float64            `json:"available_capacity"`
	UtilizationPercentage float64            `json:"utilization_percentage"`
	LineCount             int                `json:"line_count"`
	CreatedAt             time.Time          `json:"created_at"`
}

type Location struct {
	Kind string             `json:"kind"`
	Id   openapi_types.UUID `json:"id"`
}

type Package struct {
	Id          openapi_types.UUID `json:"id"`
	Type        string             `json:"type"`
	QualityMark string             `json:"quality_mark"`
	Mass        float64            `json:"mass"`
	CreatedAt   time.Time          `json:"created_at"`
	Discarded   bool               `json:"discarded"`
	Location    *Location          `json:"location"`
}

type Pallet struct {
	Id           openapi_types.UUID  `json:"id"`
	QualityMark  string              `json:"quality_mark"`
	MaxCapacity  int                 `json:"max_capacity"`
	PackageCount int                 `json:"package_count"`
	TotalMass    float64             `json:"total_mass"`
	CreatedAt    time.Time           `json:"created_at"`
	LineId       *openapi_types.UUID `json:"line_id"`
}

type WarehouseSnapshot struct {
	WarehouseId           openapi_types.UUID `json:"warehouse_id"`
	Name                  string             `json:"name"`
	Usage                 float64            `json:"usage"`
	MaxCapacity           float64            `json:"max_capacity"`
	UtilizationPercentage float64            `json:"utilization_percentage"`
	TotalPackages         int                `json:"total_packages"`
	Lines                 []LineSnapshot     `json:"lines"`
}

type LineSnapshot struct {
	LineId       openapi_types.UUID `json:"line_id"`
	LineNumber   int                `json:"line_number"`
	Usage        float64            `json:"usage"`
	MaxCapacity  float64            `json:"max_capacity"`
	Type         string             `json:"type"`
	QualityMarks []string           `json:"quality_marks"`
	Packages     []PackageSnapshot  `json:"packages"`
	Pallets      []PalletSnapshot   `json:"pallets"`
}

type PackageSnapshot struct {
	Serial      openapi_types.UUID  `json:"serial"`
	Type        string              `json:"type"`
	QualityMark string              `json:"quality_mark"`
	Mass        float64             `json:"mass"`
	CreatedAt   time.Time           `json:"created_at"`
	PalletId    *openapi_types.UUID `json:"pallet_id,omitempty"`
}

type PalletSnapshot struct {
	Serial       openapi_types.UUID `json:"serial"`
	QualityMark  string             `json:"quality_mark"`
	PackageCount int                `json:"package_count"`
	MaxCapacity  int                `json:"max_capacity"`
	TotalMass    float64            `json:"total_mass"`
}

type HistoryEntry struct {
	PackageId   openapi_types.UUID `json:"package_id"`
	QualityMark string             `json:"quality_mark"`
	Mass        float64            `json:"mass"`
	Action      string             `json:"action"`
	Timestamp   time.Time          `json:"timestamp"`
}

type PackageSearchResult struct {
	Package       Package             `json:"package"`
	WarehouseId   openapi_types.UUID  `json:"warehouse_id"`
	WarehouseName string              `json:"warehouse_name"`
	LineId        openapi_types.UUID  `json:"line_id"`
	LineNumber    int                 `json:"line_number"`
	PalletId      *openapi_types.UUID `json:"pallet_id,omitempty"`
}

type PalletSearchResult struct {
	Pallet        Pallet             `json:"pallet"`
	WarehouseId   openapi_types.UUID `json:"warehouse_id"`
	WarehouseName string             `json:"warehouse_name"`
	LineId        openapi_types.UUID `json:"line_id"`
	LineNumber    int                `json:"line_number"`
}

type Dashboard struct {
	Warehouses            int     `json:"warehouses"`
	Lines                 int     `json:"lines"`
	Packages              int     `json:"packages"`
	Pallets               int     `json:"pallets"`
	TotalCapacity         float64 `json:"total_capacity"`
	UsedCapacity          float64 `json:"used_capacity"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
	OffloadOrder          string  `json:"offload_order"`
}

type StateSummary struct {
	RecordedAt time.Time `json:"recorded_at"`
	Warehouses int       `json:"warehouses"`
	Lines      int       `json:"lines"`
	Packages   int       `json:"packages"`
	Pallets    int       `json:"pallets"`
}
