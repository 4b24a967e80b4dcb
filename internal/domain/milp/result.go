package milp

import (
	"time"

	"fleetplan/internal/domain/entity"
)

// SolveOptions are handed to the engine on every call rather than kept as
// process-wide state.
type SolveOptions struct {
	// TimeLimit is a cooperative budget, the engine returns its incumbent when it expires.
	TimeLimit time.Duration
	// Verbose forwards the engine log.
	Verbose bool
}

// Result is the raw engine outcome.
type Result struct {
	Status    entity.SolveStatus
	Objective *float64
	// Values is indexed by VarID, absent variables read as 0. Empty when the
	// engine produced no assignment.
	Values []float64
}

// HasValues reports whether the engine returned an assignment.
func (r *Result) HasValues() bool {
	return len(r.Values) > 0
}
