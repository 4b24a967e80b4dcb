package entity

import "time"

// ArcSelection is the thresholded routing decision: ArcSelection[i][j] is true
// when some vehicle drives directly from node i to node j. The diagonal is never set.
type ArcSelection [][]bool

// NewArcSelection allocates an empty n x n selection.
func NewArcSelection(n int) ArcSelection {
	arcs := make(ArcSelection, n)
	for i := range arcs {
		arcs[i] = make([]bool, n)
	}

	return arcs
}

// Size returns the number of nodes the selection covers.
func (a ArcSelection) Size() int {
	return len(a)
}

// Select marks arc i->j, self loops are ignored.
func (a ArcSelection) Select(i, j int) {
	if i == j {
		return
	}
	a[i][j] = true
}

// SolverResult is the engine outcome expressed over node indices.
type SolverResult struct {
	Status    SolveStatus
	Objective *float64
	Arcs      ArcSelection
	Loads     []*float64 // Cumulative load on arrival, nil where the engine returned nothing.
}

// Solution is the decoded outcome of one pipeline run.
type Solution struct {
	Status          SolveStatus       `json:"status"`
	Backend         string            `json:"backend"`
	Objective       *float64          `json:"objective,omitempty"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	Routes          []Route           `json:"routes"`
	Diagnostics     []RouteDiagnostic `json:"diagnostics,omitempty"`
	SolveDuration   time.Duration     `json:"solve_duration"`
}
