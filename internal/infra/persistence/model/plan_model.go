package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanModel is the GORM-specific struct for the 'plans' table.
// Nodes and diagnostics are stored as jsonb since they are only ever read whole.
type PlanModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	State           string         `gorm:"type:varchar(16);not null;index"`
	Status          string         `gorm:"type:varchar(32)"`
	Backend         string         `gorm:"type:varchar(32)"`
	VehicleCount    int            `gorm:"not null"`
	VehicleCapacity float64        `gorm:"not null"`
	TimeLimitMs     int64          `gorm:"not null"`
	NodeCount       int            `gorm:"not null"`
	Nodes           datatypes.JSON `gorm:"type:jsonb;not null"`
	Objective       *float64
	TotalDistanceKm float64        `gorm:"not null;default:0"`
	Diagnostics     datatypes.JSON `gorm:"type:jsonb"`
	SolveMs         int64          `gorm:"not null;default:0"`
	ErrorMessage    string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time

	Routes []PlanRouteModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}

// PlanRouteModel is the GORM-specific struct for the 'plan_routes' table.
type PlanRouteModel struct {
	PlanID     uuid.UUID                `gorm:"type:uuid;primary_key"`
	RouteIndex int                      `gorm:"primary_key"`
	Nodes      datatypes.JSONSlice[int] `gorm:"type:jsonb;not null"`
	LengthKm   float64                  `gorm:"not null"`
	Demand     float64                  `gorm:"not null"`
	Origin     string                   `gorm:"type:varchar(16);not null"`
	WellFormed bool                     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlanRouteModel) TableName() string {
	return "plan_routes"
}
