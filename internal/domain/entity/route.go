package entity

// RouteOrigin tells how the decoder produced a route.
type RouteOrigin string

const (
	// RouteOriginPrimary marks a route walked from a depot departure arc.
	RouteOriginPrimary RouteOrigin = "primary"
	// RouteOriginRecovery marks a route stitched around nodes no primary route reached.
	RouteOriginRecovery RouteOrigin = "recovery"
)

// Route is a closed vehicle tour that starts and ends at the depot.
type Route struct {
	ID         int         `json:"route_id"`    // 1-based position in the plan.
	Nodes      []int       `json:"route_nodes"` // Node ids including both depot endpoints.
	LengthKm   float64     `json:"route_length"`
	Demand     float64     `json:"demand"`
	Origin     RouteOrigin `json:"origin"`
	WellFormed bool        `json:"well_formed"` // Closed at the depot without any decoder guard firing.
}

// Stops returns the visited nodes without the depot endpoints.
func (r Route) Stops() []int {
	if len(r.Nodes) <= 2 {
		return nil
	}

	return r.Nodes[1 : len(r.Nodes)-1]
}

// DiagnosticKind classifies anomalies met while decoding routes.
type DiagnosticKind string

const (
	// DiagnosticBranchingNode flags a node with more than one selected outgoing arc.
	DiagnosticBranchingNode DiagnosticKind = "branching_node"
	// DiagnosticCycleGuard flags a walk that came back to a node already on its route.
	DiagnosticCycleGuard DiagnosticKind = "cycle_guard"
	// DiagnosticDeadEnd flags a walk that reached a node without outgoing arcs.
	DiagnosticDeadEnd DiagnosticKind = "dead_end"
	// DiagnosticRejoinedRoute flags a walk that ran into a node owned by an earlier route.
	DiagnosticRejoinedRoute DiagnosticKind = "rejoined_route"
	// DiagnosticOrphanRecovered flags a node only reachable through a recovery route.
	DiagnosticOrphanRecovered DiagnosticKind = "orphan_recovered"
)

// RouteDiagnostic records one decoder anomaly.
type RouteDiagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Node    int            `json:"node"`
	RouteID int            `json:"route_id,omitempty"`
}
