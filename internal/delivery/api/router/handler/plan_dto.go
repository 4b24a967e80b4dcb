package handler

import (
	"time"

	"fleetplan/internal/domain/entity"
	"fleetplan/internal/usecase"

	"github.com/google/uuid"
)

// NodeRequest is one depot or customer row of a solve request
type NodeRequest struct {
	ID     int     `json:"id" validate:"gte=0"`
	Lat    float64 `json:"lat" validate:"latitude"`
	Lon    float64 `json:"lon" validate:"longitude"`
	Demand float64 `json:"demand" validate:"gte=0"`
}

// SolvePlanRequest represents the request body for creating a plan.
// Zero fleet values fall back to the configured defaults.
type SolvePlanRequest struct {
	Nodes            []NodeRequest `json:"nodes" validate:"required,min=1,dive"`
	VehicleCount     int           `json:"vehicleCount" validate:"gte=0"`
	VehicleCapacity  float64       `json:"vehicleCapacity" validate:"gte=0"`
	TimeLimitSeconds float64       `json:"timeLimitSeconds" validate:"gte=0"`
	Verbose          bool          `json:"verbose"`
}

func (r *SolvePlanRequest) toUsecase(requestID string) *usecase.SolveRequest {
	nodes := make([]entity.Node, len(r.Nodes))
	for i, n := range r.Nodes {
		nodes[i] = entity.Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Demand: n.Demand}
	}

	return &usecase.SolveRequest{
		Nodes:           nodes,
		VehicleCount:    r.VehicleCount,
		VehicleCapacity: r.VehicleCapacity,
		TimeLimit:       time.Duration(r.TimeLimitSeconds * float64(time.Second)),
		Verbose:         r.Verbose,
		RequestID:       requestID,
	}
}

// PlanResponse is the API view of a plan
type PlanResponse struct {
	ID               uuid.UUID                `json:"id"`
	State            entity.PlanState         `json:"state"`
	Status           entity.SolveStatus       `json:"status,omitempty"`
	Backend          string                   `json:"backend,omitempty"`
	VehicleCount     int                      `json:"vehicle_count"`
	VehicleCapacity  float64                  `json:"vehicle_capacity"`
	TimeLimitSeconds float64                  `json:"time_limit_seconds"`
	NodeCount        int                      `json:"node_count"`
	Nodes            []entity.Node            `json:"nodes,omitempty"`
	Objective        *float64                 `json:"objective,omitempty"`
	TotalDistanceKm  float64                  `json:"total_distance_km"`
	Routes           []entity.Route           `json:"routes,omitempty"`
	Diagnostics      []entity.RouteDiagnostic `json:"diagnostics,omitempty"`
	SolveSeconds     float64                  `json:"solve_seconds"`
	Error            string                   `json:"error,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func toPlanResponse(plan *entity.Plan) *PlanResponse {
	return &PlanResponse{
		ID:               plan.ID,
		State:            plan.State,
		Status:           plan.Status,
		Backend:          plan.Backend,
		VehicleCount:     plan.VehicleCount,
		VehicleCapacity:  plan.VehicleCapacity,
		TimeLimitSeconds: plan.TimeLimit.Seconds(),
		NodeCount:        len(plan.Nodes),
		Nodes:            plan.Nodes,
		Objective:        plan.Objective,
		TotalDistanceKm:  plan.TotalDistanceKm,
		Routes:           plan.Routes,
		Diagnostics:      plan.Diagnostics,
		SolveSeconds:     plan.SolveDuration.Seconds(),
		Error:            plan.ErrorMessage,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
}

// PlanSummary is a list row without nodes and routes
type PlanSummary struct {
	ID              uuid.UUID          `json:"id"`
	State           entity.PlanState   `json:"state"`
	Status          entity.SolveStatus `json:"status,omitempty"`
	Backend         string             `json:"backend,omitempty"`
	VehicleCount    int                `json:"vehicle_count"`
	TotalDistanceKm float64            `json:"total_distance_km"`
	CreatedAt       time.Time          `json:"created_at"`
}

func toPlanSummaries(plans []*entity.Plan) []PlanSummary {
	rows := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, PlanSummary{
			ID:              p.ID,
			State:           p.State,
			Status:          p.Status,
			Backend:         p.Backend,
			VehicleCount:    p.VehicleCount,
			TotalDistanceKm: p.TotalDistanceKm,
			CreatedAt:       p.CreatedAt,
		})
	}

	return rows
}

// ListPlansQuery binds the paging query parameters
type ListPlansQuery struct {
	Limit  int `query:"limit" validate:"gte=0"`
	Offset int `query:"offset" validate:"gte=0"`
}
