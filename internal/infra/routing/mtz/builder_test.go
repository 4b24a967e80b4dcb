package mtz

import (
	"strings"
	"testing"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/milp"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

// scenarioParams is a depot plus three customers with demands 3, 4 and 5,
// served by two vehicles of capacity 8.
func scenarioParams() Params {
	return Params{
		Distances: entity.DistanceMatrix{
			{0, 4, 5, 6},
			{4, 0, 2, 7},
			{5, 2, 0, 6},
			{6, 7, 6, 0},
		},
		Demands:         []float64{0, 3, 4, 5},
		VehicleCount:    2,
		VehicleCapacity: 8,
	}
}

func arcsFromRoutes(n int, routes ...[]int) entity.ArcSelection {
	arcs := entity.NewArcSelection(n)
	for _, r := range routes {
		for k := 1; k < len(r); k++ {
			arcs.Select(r[k-1], r[k])
		}
	}

	return arcs
}

func TestBuild_Shape(t *testing.T) {
	f, err := Build(scenarioParams())
	require.NoError(t, err)

	assert.Equal(t, 4, f.Size())
	assert.Equal(t, 16, f.Model.NumVars())
	assert.Len(t, f.Model.Constraints(), 24)
	assert.Len(t, f.Model.Objective, 12)

	for i := range 4 {
		assert.Equal(t, milp.NoVar, f.X[i][i])
	}

	id, ok := f.Model.Lookup("x_1_2")
	require.True(t, ok)
	assert.Equal(t, f.X[1][2], id)
	assert.Equal(t, milp.Binary, f.Model.Var(id).Kind)

	load := f.Model.Var(f.U[3])
	assert.Equal(t, milp.Continuous, load.Kind)
	assert.InDelta(t, 8.0, load.Upper, tolerance)

	names := map[string]milp.Constraint{}
	for _, c := range f.Model.Constraints() {
		names[c.Name] = c
	}
	for _, want := range []string{
		"visit_once_in_1", "visit_once_in_3", "flow_cons_2",
		"departures_from_depot", "returns_to_depot",
		"u_depot_zero", "u_lower_1", "u_upper_3", "mtz_0_1", "mtz_2_3",
	} {
		assert.Contains(t, names, want)
	}
	assert.NotContains(t, names, "mtz_1_0")
	assert.NotContains(t, names, "visit_once_in_0")

	mtz := names["mtz_2_3"]
	assert.Equal(t, milp.LessEqual, mtz.Sense)
	assert.InDelta(t, 3.0, mtz.RHS, tolerance)
	assert.InDelta(t, 2.0, names["departures_from_depot"].RHS, tolerance)
}

func TestBuild_FeasibleTwoRouteSolution(t *testing.T) {
	p := scenarioParams()
	f, err := Build(p)
	require.NoError(t, err)

	arcs := arcsFromRoutes(4, []int{0, 1, 2, 0}, []int{0, 3, 0})
	values := f.Assignment(arcs, []float64{0, 3, 7, 5})

	assert.Empty(t, f.Model.Check(values, tolerance))

	expected := p.Distances.RouteLength([]int{0, 1, 2, 0}) + p.Distances.RouteLength([]int{0, 3, 0})
	assert.InDelta(t, expected, f.Model.ObjectiveValue(values), tolerance)
}

func TestBuild_RejectsOverloadedRoute(t *testing.T) {
	f, err := Build(scenarioParams())
	require.NoError(t, err)

	arcs := arcsFromRoutes(4, []int{0, 1, 2, 3, 0})
	values := f.Assignment(arcs, []float64{0, 3, 7, 12})

	assert.NotEmpty(t, f.Model.Check(values, tolerance))
}

func TestBuild_RejectsSubtour(t *testing.T) {
	f, err := Build(scenarioParams())
	require.NoError(t, err)

	arcs := arcsFromRoutes(4, []int{0, 1, 0}, []int{2, 3, 2})
	values := f.Assignment(arcs, []float64{0, 3, 4, 5})

	violations := f.Model.Check(values, tolerance)
	require.NotEmpty(t, violations)

	var mtzViolated bool
	for _, v := range violations {
		if strings.HasPrefix(v.Name, "mtz_") {
			mtzViolated = true
		}
	}
	assert.True(t, mtzViolated, "subtour must break a load propagation constraint: %v", violations)
}

func TestBuild_RejectsZeroDemandCustomers(t *testing.T) {
	// With zero demands u_1 = u_2 = 0 would satisfy every mtz row, letting
	// 1 -> 2 -> 1 bypass the depot.
	_, err := Build(Params{
		Distances: entity.DistanceMatrix{
			{0, 10, 10},
			{10, 0, 1},
			{10, 1, 0},
		},
		Demands:         []float64{0, 0, 0},
		VehicleCount:    1,
		VehicleCapacity: 5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidNodes), "got %v", err)
	assert.Contains(t, err.Error(), "customer 1 must have positive demand")
}

func TestBuild_SingleDepot(t *testing.T) {
	f, err := Build(Params{
		Distances:       entity.DistanceMatrix{{0}},
		Demands:         []float64{0},
		VehicleCount:    1,
		VehicleCapacity: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.Model.NumVars())
	require.Len(t, f.Model.Constraints(), 1)
	assert.Equal(t, "u_depot_zero", f.Model.Constraints()[0].Name)
	assert.Empty(t, f.Model.Objective)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr error
	}{
		{name: "valid", mutate: func(*Params) {}},
		{name: "zero vehicles", mutate: func(p *Params) { p.VehicleCount = 0 }, wantErr: domainerrors.ErrInvalidFleet},
		{name: "zero capacity", mutate: func(p *Params) { p.VehicleCapacity = 0 }, wantErr: domainerrors.ErrInvalidFleet},
		{name: "negative capacity", mutate: func(p *Params) { p.VehicleCapacity = -1 }, wantErr: domainerrors.ErrInvalidFleet},
		{name: "demand above capacity", mutate: func(p *Params) { p.Demands[3] = 9 }, wantErr: domainerrors.ErrDemandExceedsCapacity},
		{name: "negative demand", mutate: func(p *Params) { p.Demands[2] = -1 }, wantErr: domainerrors.ErrInvalidNodes},
		{name: "customer without demand", mutate: func(p *Params) { p.Demands[2] = 0 }, wantErr: domainerrors.ErrInvalidNodes},
		{name: "depot with demand", mutate: func(p *Params) { p.Demands[0] = 1 }, wantErr: domainerrors.ErrInvalidNodes},
		{name: "demand count mismatch", mutate: func(p *Params) { p.Demands = p.Demands[:3] }, wantErr: domainerrors.ErrInvalidNodes},
		{name: "ragged matrix", mutate: func(p *Params) { p.Distances[1] = p.Distances[1][:2] }, wantErr: domainerrors.ErrInvalidNodes},
		{name: "empty matrix", mutate: func(p *Params) { p.Distances = nil; p.Demands = nil }, wantErr: domainerrors.ErrInvalidNodes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioParams()
			tt.mutate(&p)

			err := Validate(p)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			_, buildErr := Build(p)
			assert.Error(t, buildErr)
		})
	}
}

func TestExtract_ThresholdsArcs(t *testing.T) {
	f, err := Build(scenarioParams())
	require.NoError(t, err)

	values := make([]float64, f.Model.NumVars())
	values[f.X[0][1]] = 0.9999
	values[f.X[1][2]] = 0.51
	values[f.X[2][0]] = 1
	values[f.X[0][3]] = 0.49
	values[f.U[2]] = 7
	objective := 11.0

	res := f.Extract(&milp.Result{Status: entity.SolveStatusTimeLimitReached, Objective: &objective, Values: values})

	assert.Equal(t, entity.SolveStatusTimeLimitReached, res.Status)
	require.NotNil(t, res.Objective)
	assert.InDelta(t, 11.0, *res.Objective, tolerance)
	assert.True(t, res.Arcs[0][1])
	assert.True(t, res.Arcs[1][2])
	assert.True(t, res.Arcs[2][0])
	assert.False(t, res.Arcs[0][3])
	require.NotNil(t, res.Loads[2])
	assert.InDelta(t, 7.0, *res.Loads[2], tolerance)
}

func TestExtract_NoValues(t *testing.T) {
	f, err := Build(scenarioParams())
	require.NoError(t, err)

	res := f.Extract(&milp.Result{Status: entity.SolveStatusInfeasible})

	assert.Equal(t, entity.SolveStatusInfeasible, res.Status)
	assert.Nil(t, res.Objective)
	require.Len(t, res.Arcs, 4)
	for i := range 4 {
		assert.NotContains(t, res.Arcs[i], true)
		assert.Nil(t, res.Loads[i])
	}
}
