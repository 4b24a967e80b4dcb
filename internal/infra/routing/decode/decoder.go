// Package decode reconstructs depot-bounded vehicle routes from a thresholded
// arc selection. It never fails and never loops: malformed selections come
// back as best-effort routes plus diagnostics.
package decode

import (
	"fleetplan/internal/domain/entity"
)

// Result is the decoder output.
type Result struct {
	Routes      []entity.Route
	Diagnostics []entity.RouteDiagnostic
}

type nodeState uint8

const (
	unvisited nodeState = iota
	inCurrentRoute
	used
)

type stopReason uint8

const (
	stopAtDepot stopReason = iota
	stopCycleGuard
	stopDeadEnd
	stopRejoined
)

type decoder struct {
	depot      int
	successors [][]int
	state      []nodeState
	result     Result
}

// Routes decodes arcs into routes rooted at depot.
//
// One primary route is walked per selected depot departure arc, in ascending
// target order. Walks stop at the depot, at a node already on the current
// route, at a node without successors, or at a node owned by an earlier route;
// in every case the route is closed at the depot. Nodes that no primary route
// reached are then stitched into recovery routes under the same rules, so
// every non-depot node lands on exactly one route. A node with several
// selected successors is followed along its lowest id successor.
//
// Rows shorter than the selection are read as unselected arcs; columns past
// the row count are ignored. Routes is a pure function of its input.
func Routes(arcs entity.ArcSelection, depot int) Result {
	n := arcs.Size()
	d := &decoder{
		depot:      depot,
		successors: make([][]int, n),
		state:      make([]nodeState, n),
	}
	if depot < 0 || depot >= n {
		return d.result
	}

	for i := range n {
		for j := range min(n, len(arcs[i])) {
			if i != j && arcs[i][j] {
				d.successors[i] = append(d.successors[i], j)
			}
		}
		if i != depot && len(d.successors[i]) > 1 {
			d.diagnose(entity.DiagnosticBranchingNode, i, 0)
		}
	}

	for _, first := range d.successors[depot] {
		if d.state[first] == used {
			// A second departure into an already routed node carries no new stops.
			d.diagnose(entity.DiagnosticRejoinedRoute, first, 0)

			continue
		}
		d.walk(first, entity.RouteOriginPrimary)
	}

	for node := range n {
		if node == depot || d.state[node] != unvisited {
			continue
		}
		d.walk(node, entity.RouteOriginRecovery)
	}

	return d.result
}

func (d *decoder) walk(first int, origin entity.RouteOrigin) {
	routeID := len(d.result.Routes) + 1
	nodes := []int{d.depot}
	reason := stopAtDepot
	var reasonNode int

	curr := first
	for {
		if curr == d.depot {
			break
		}
		switch d.state[curr] {
		case inCurrentRoute:
			reason, reasonNode = stopCycleGuard, curr
		case used:
			reason, reasonNode = stopRejoined, curr
		case unvisited:
		}
		if reason != stopAtDepot {
			break
		}

		nodes = append(nodes, curr)
		d.state[curr] = inCurrentRoute
		if origin == entity.RouteOriginRecovery {
			d.diagnose(entity.DiagnosticOrphanRecovered, curr, routeID)
		}

		next := d.successors[curr]
		if len(next) == 0 {
			reason, reasonNode = stopDeadEnd, curr

			break
		}
		curr = next[0]
	}
	nodes = append(nodes, d.depot)

	for _, id := range nodes[1 : len(nodes)-1] {
		d.state[id] = used
	}

	switch reason {
	case stopCycleGuard:
		d.diagnose(entity.DiagnosticCycleGuard, reasonNode, routeID)
	case stopDeadEnd:
		d.diagnose(entity.DiagnosticDeadEnd, reasonNode, routeID)
	case stopRejoined:
		d.diagnose(entity.DiagnosticRejoinedRoute, reasonNode, routeID)
	case stopAtDepot:
	}

	d.result.Routes = append(d.result.Routes, entity.Route{
		ID:         routeID,
		Nodes:      nodes,
		Origin:     origin,
		WellFormed: origin == entity.RouteOriginPrimary && reason == stopAtDepot,
	})
}

func (d *decoder) diagnose(kind entity.DiagnosticKind, node, routeID int) {
	d.result.Diagnostics = append(d.result.Diagnostics, entity.RouteDiagnostic{
		Kind:    kind,
		Node:    node,
		RouteID: routeID,
	})
}
