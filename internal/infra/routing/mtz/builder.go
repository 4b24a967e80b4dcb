// Package mtz builds the Miller-Tucker-Zemlin formulation of the capacitated
// vehicle routing problem and maps engine results back onto node indices.
package mtz

import (
	"fmt"
	"math"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/milp"

	"github.com/pkg/errors"
)

// BinaryThreshold splits relaxed binary values into selected and not selected arcs.
const BinaryThreshold = 0.5

// ModelName is written into exported model files.
const ModelName = "CVRP_MTZ"

// Params is everything the formulation depends on.
type Params struct {
	Distances       entity.DistanceMatrix
	Demands         []float64
	VehicleCount    int
	VehicleCapacity float64
}

// Formulation is a built model together with the variable layout needed to
// read its solution back.
type Formulation struct {
	Model *milp.Model
	// X[i][j] is the arc variable for i->j, milp.NoVar on the diagonal.
	X [][]milp.VarID
	// U[i] is the cumulative load on arrival at node i.
	U []milp.VarID
}

// Size returns the node count of the formulation.
func (f *Formulation) Size() int {
	return len(f.U)
}

// Validate rejects fleet and demand configurations before any model is built.
func Validate(p Params) error {
	if p.VehicleCount < 1 {
		return errors.Wrapf(domainerrors.ErrInvalidFleet, "vehicle count %d", p.VehicleCount)
	}
	if !(p.VehicleCapacity > 0) || math.IsInf(p.VehicleCapacity, 0) {
		return errors.Wrapf(domainerrors.ErrInvalidFleet, "vehicle capacity %g", p.VehicleCapacity)
	}

	n := len(p.Distances)
	if n == 0 {
		return errors.Wrap(domainerrors.ErrInvalidNodes, "at least the depot is required")
	}
	for i, row := range p.Distances {
		if len(row) != n {
			return errors.Wrapf(domainerrors.ErrInvalidNodes, "distance row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(p.Demands) != n {
		return errors.Wrapf(domainerrors.ErrInvalidNodes, "got %d demands for %d nodes", len(p.Demands), n)
	}

	for i, d := range p.Demands {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return errors.Wrapf(domainerrors.ErrInvalidNodes, "node %d has invalid demand %g", i, d)
		}
		// u_i >= demand_i > 0 is what keeps a customer-only cycle infeasible.
		if i != entity.DepotID && d == 0 {
			return errors.Wrapf(domainerrors.ErrInvalidNodes, "customer %d must have positive demand", i)
		}
		if d > p.VehicleCapacity {
			return errors.Wrapf(domainerrors.ErrDemandExceedsCapacity, "node %d demand %g exceeds capacity %g", i, d, p.VehicleCapacity)
		}
	}
	if p.Demands[entity.DepotID] != 0 {
		return errors.Wrapf(domainerrors.ErrInvalidNodes, "depot demand must be 0, got %g", p.Demands[entity.DepotID])
	}

	return nil
}

// Build validates p and assembles the MTZ model:
//
//	min  sum d_ij x_ij
//	s.t. sum_i x_ij = 1                    j != 0
//	     sum_j x_ij - sum_j x_ji = 0       i != 0
//	     sum_j x_0j <= K, sum_i x_i0 <= K
//	     u_0 = 0, demand_i <= u_i <= Q
//	     u_i - u_j + Q x_ij <= Q - demand_j  i != j, j != 0
func Build(p Params) (*Formulation, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	n := len(p.Distances)
	q := p.VehicleCapacity
	model := milp.NewModel(ModelName)

	x := make([][]milp.VarID, n)
	for i := range n {
		x[i] = make([]milp.VarID, n)
		for j := range n {
			if i == j {
				x[i][j] = milp.NoVar

				continue
			}
			x[i][j] = model.AddBinary(fmt.Sprintf("x_%d_%d", i, j))
		}
	}

	u := make([]milp.VarID, n)
	for i := range n {
		u[i] = model.AddContinuous(fmt.Sprintf("u_%d", i), 0, q)
	}

	objective := make(milp.Expr, 0, n*(n-1))
	for i := range n {
		for j := range n {
			if i != j {
				objective = append(objective, milp.Term{Var: x[i][j], Coef: p.Distances[i][j]})
			}
		}
	}
	model.Objective = objective

	for j := 1; j < n; j++ {
		in := make(milp.Expr, 0, n-1)
		for i := range n {
			if i != j {
				in = append(in, milp.Term{Var: x[i][j], Coef: 1})
			}
		}
		model.AddConstraint(fmt.Sprintf("visit_once_in_%d", j), in, milp.Equal, 1)
	}

	for i := 1; i < n; i++ {
		flow := make(milp.Expr, 0, 2*(n-1))
		for j := range n {
			if j != i {
				flow = append(flow, milp.Term{Var: x[i][j], Coef: 1}, milp.Term{Var: x[j][i], Coef: -1})
			}
		}
		model.AddConstraint(fmt.Sprintf("flow_cons_%d", i), flow, milp.Equal, 0)
	}

	// A lone depot has no arcs, so the fleet bounds would be empty rows.
	if n > 1 {
		departures := make(milp.Expr, 0, n-1)
		returns := make(milp.Expr, 0, n-1)
		for j := 1; j < n; j++ {
			departures = append(departures, milp.Term{Var: x[entity.DepotID][j], Coef: 1})
			returns = append(returns, milp.Term{Var: x[j][entity.DepotID], Coef: 1})
		}
		k := float64(p.VehicleCount)
		model.AddConstraint("departures_from_depot", departures, milp.LessEqual, k)
		model.AddConstraint("returns_to_depot", returns, milp.LessEqual, k)
	}

	model.AddConstraint("u_depot_zero", milp.Expr{{Var: u[entity.DepotID], Coef: 1}}, milp.Equal, 0)
	for i := 1; i < n; i++ {
		model.AddConstraint(fmt.Sprintf("u_lower_%d", i), milp.Expr{{Var: u[i], Coef: 1}}, milp.GreaterEqual, p.Demands[i])
		model.AddConstraint(fmt.Sprintf("u_upper_%d", i), milp.Expr{{Var: u[i], Coef: 1}}, milp.LessEqual, q)
	}

	for i := range n {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			model.AddConstraint(fmt.Sprintf("mtz_%d_%d", i, j), milp.Expr{
				{Var: u[i], Coef: 1},
				{Var: u[j], Coef: -1},
				{Var: x[i][j], Coef: q},
			}, milp.LessEqual, q-p.Demands[j])
		}
	}

	return &Formulation{Model: model, X: x, U: u}, nil
}

// Extract turns an engine result into crisp arc decisions and loads. Arc
// values are thresholded at BinaryThreshold so the decoder never sees
// fractional input.
func (f *Formulation) Extract(res *milp.Result) entity.SolverResult {
	n := f.Size()
	out := entity.SolverResult{
		Status:    res.Status,
		Objective: res.Objective,
		Arcs:      entity.NewArcSelection(n),
		Loads:     make([]*float64, n),
	}
	if !res.HasValues() {
		return out
	}

	for i := range n {
		for j := range n {
			if id := f.X[i][j]; id != milp.NoVar && value(res.Values, id) > BinaryThreshold {
				out.Arcs.Select(i, j)
			}
		}
		load := value(res.Values, f.U[i])
		out.Loads[i] = &load
	}

	return out
}

// Assignment builds a full variable assignment from arc decisions and loads,
// the inverse of Extract. It is used to score candidate routings against the model.
func (f *Formulation) Assignment(arcs entity.ArcSelection, loads []float64) []float64 {
	values := make([]float64, f.Model.NumVars())
	for i := range f.X {
		for j, id := range f.X[i] {
			if id != milp.NoVar && arcs[i][j] {
				values[id] = 1
			}
		}
	}
	for i, id := range f.U {
		if i < len(loads) {
			values[id] = loads[i]
		}
	}

	return values
}

func value(values []float64, id milp.VarID) float64 {
	if int(id) >= len(values) {
		return 0
	}

	return values[id]
}
