package usecase

import (
	"context"
	"time"

	"fleetplan/internal/domain/entity"

	"github.com/google/uuid"
)

// SolveRequest describes one routing problem: the depot and customer nodes and
// the fleet that must serve them. Zero fleet fields fall back to configured defaults.
type SolveRequest struct {
	Nodes           []entity.Node
	VehicleCount    int
	VehicleCapacity float64
	TimeLimit       time.Duration
	Verbose         bool

	// RequestID is propagated to asynchronous workers for tracing
	RequestID string
}

// Problem converts the request into the parameters stored on a plan.
func (r *SolveRequest) Problem() *entity.Plan {
	return &entity.Plan{
		State:           entity.PlanStatePending,
		VehicleCount:    r.VehicleCount,
		VehicleCapacity: r.VehicleCapacity,
		TimeLimit:       r.TimeLimit,
		Nodes:           r.Nodes,
	}
}

// RoutePlanner runs the CVRP pipeline without touching storage
type RoutePlanner interface {
	// Prepare applies fleet defaults and validates and normalizes the nodes.
	Prepare(req *SolveRequest) (*SolveRequest, error)

	// Plan computes distances, solves the MTZ model and decodes routes.
	Plan(ctx context.Context, req *SolveRequest) (*entity.Solution, error)
}

// PlanningUsecase defines the interface for plan management use cases
type PlanningUsecase interface {
	// Solve runs the pipeline synchronously and stores the plan with its result
	Solve(ctx context.Context, req *SolveRequest) (*entity.Plan, error)

	// Submit stores a pending plan and queues it for the solve worker
	Submit(ctx context.Context, req *SolveRequest) (*entity.Plan, error)

	// ProcessPlan solves a pending plan, called by the solve worker
	ProcessPlan(ctx context.Context, planID uuid.UUID) (*entity.Plan, error)

	// GetPlan retrieves a plan with its routes
	GetPlan(ctx context.Context, planID uuid.UUID) (*entity.Plan, error)

	// ListPlans retrieves plan headers, newest first
	ListPlans(ctx context.Context, limit, offset int) ([]*entity.Plan, error)

	// ExportRoutesCSV renders the route table of a solved plan
	ExportRoutesCSV(ctx context.Context, planID uuid.UUID) ([]byte, error)

	// ExportRoutesGeoJSON renders the routes of a solved plan as a feature collection
	ExportRoutesGeoJSON(ctx context.Context, planID uuid.UUID) ([]byte, error)

	// RouteQRCode renders a PNG QR code for one route of a solved plan
	RouteQRCode(ctx context.Context, planID uuid.UUID, routeID int) ([]byte, error)
}
