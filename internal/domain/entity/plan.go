package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanState tracks a plan through asynchronous solving.
type PlanState string

const (
	// PlanStatePending means the plan is queued for the solve worker.
	PlanStatePending PlanState = "pending"
	// PlanStateSolved means the engine returned, whatever its status.
	PlanStateSolved PlanState = "solved"
	// PlanStateFailed means the pipeline errored before producing a status.
	PlanStateFailed PlanState = "failed"
)

// String returns the string representation of the PlanState.
func (s PlanState) String() string {
	return string(s)
}

// Plan is one routing request together with its result.
type Plan struct {
	ID              uuid.UUID         `json:"id"`
	State           PlanState         `json:"state"`
	Status          SolveStatus       `json:"status,omitempty"`
	Backend         string            `json:"backend,omitempty"`
	VehicleCount    int               `json:"vehicle_count"`
	VehicleCapacity float64           `json:"vehicle_capacity"`
	TimeLimit       time.Duration     `json:"time_limit"`
	Nodes           []Node            `json:"nodes"`
	Objective       *float64          `json:"objective,omitempty"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	Routes          []Route           `json:"routes"`
	Diagnostics     []RouteDiagnostic `json:"diagnostics,omitempty"`
	SolveDuration   time.Duration     `json:"solve_duration"`
	ErrorMessage    string            `json:"error_message,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ApplySolution copies a pipeline result onto the plan and marks it solved.
func (p *Plan) ApplySolution(sol *Solution) {
	p.State = PlanStateSolved
	p.Status = sol.Status
	p.Backend = sol.Backend
	p.Objective = sol.Objective
	p.TotalDistanceKm = sol.TotalDistanceKm
	p.Routes = sol.Routes
	p.Diagnostics = sol.Diagnostics
	p.SolveDuration = sol.SolveDuration
	p.ErrorMessage = ""
}

// Route looks up a route by its 1-based id.
func (p *Plan) Route(id int) (*Route, bool) {
	for i := range p.Routes {
		if p.Routes[i].ID == id {
			return &p.Routes[i], true
		}
	}

	return nil, false
}
