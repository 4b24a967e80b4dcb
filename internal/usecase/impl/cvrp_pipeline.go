package impl

import (
	"context"
	"log/slog"
	"time"

	"fleetplan/config"
	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/milp"
	"fleetplan/internal/domain/service"
	"fleetplan/internal/infra/routing/decode"
	"fleetplan/internal/infra/routing/geo"
	"fleetplan/internal/infra/routing/loader"
	"fleetplan/internal/infra/routing/mtz"
	"fleetplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CVRPPipelineParams holds dependencies for the pipeline, injected by Fx
type CVRPPipelineParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Solver   service.Solver
	Cache    service.MatrixCache   `optional:"true"`
	Recorder service.SolveRecorder `optional:"true"`
}

type cvrpPipeline struct {
	planning  config.PlanningConfig
	timeLimit time.Duration
	verbose   bool
	solver    service.Solver
	cache     service.MatrixCache
	recorder  service.SolveRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewCVRPPipeline creates the coordinates to routes pipeline. Without a
// cache every plan computes its matrix from scratch.
func NewCVRPPipeline(params CVRPPipelineParams) usecase.RoutePlanner {
	cfg := params.Config
	p := &cvrpPipeline{
		timeLimit: config.DefaultSolverTimeLimit,
		solver:    params.Solver,
		cache:     params.Cache,
		recorder:  params.Recorder,
		logger:    params.Logger,
		now:       time.Now,
	}
	if cfg.Planning != nil {
		p.planning = *cfg.Planning
	}
	if cfg.Solver != nil {
		if cfg.Solver.TimeLimit > 0 {
			p.timeLimit = cfg.Solver.TimeLimit
		}
		p.verbose = cfg.Solver.Verbose
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Prepare fills fleet defaults, orders nodes by id and rejects inputs the
// model cannot represent. It never mutates req.
func (p *cvrpPipeline) Prepare(req *usecase.SolveRequest) (*usecase.SolveRequest, error) {
	if req == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidNodes, "empty request")
	}

	nodes, err := loader.Normalize(req.Nodes)
	if err != nil {
		return nil, err
	}
	if p.planning.MaxNodes > 0 && len(nodes) > p.planning.MaxNodes {
		return nil, errors.Wrapf(domainerrors.ErrTooManyNodes, "%d nodes, limit %d", len(nodes), p.planning.MaxNodes)
	}

	prepared := *req
	prepared.Nodes = nodes
	if prepared.VehicleCount == 0 {
		prepared.VehicleCount = p.planning.DefaultVehicleCount
	}
	if prepared.VehicleCapacity == 0 {
		prepared.VehicleCapacity = p.planning.DefaultVehicleCapacity
	}
	if prepared.TimeLimit <= 0 {
		prepared.TimeLimit = p.timeLimit
	}
	prepared.Verbose = prepared.Verbose || p.verbose

	if err := mtz.Validate(mtz.Params{
		Distances:       squareZero(len(nodes)),
		Demands:         entity.Demands(nodes),
		VehicleCount:    prepared.VehicleCount,
		VehicleCapacity: prepared.VehicleCapacity,
	}); err != nil {
		return nil, err
	}

	return &prepared, nil
}

// Plan runs coordinates, matrix, model, solver, extract, decode and summary
// in sequence. Engine statuses are results, errors are reserved for inputs
// that fail validation and engines that could not run.
func (p *cvrpPipeline) Plan(ctx context.Context, req *usecase.SolveRequest) (*entity.Solution, error) {
	prepared, err := p.Prepare(req)
	if err != nil {
		return nil, err
	}

	start := p.now()
	nodes := prepared.Nodes
	backend := p.solver.Name()

	if len(nodes) == 1 {
		zero := 0.0
		sol := &entity.Solution{
			Status:    entity.SolveStatusOptimal,
			Backend:   backend,
			Objective: &zero,
			Routes:    []entity.Route{},
		}
		p.observe(sol, len(nodes))

		return sol, nil
	}

	matrix, err := p.distanceMatrix(ctx, entity.Coordinates(nodes))
	if err != nil {
		return nil, err
	}

	formulation, err := mtz.Build(mtz.Params{
		Distances:       matrix,
		Demands:         entity.Demands(nodes),
		VehicleCount:    prepared.VehicleCount,
		VehicleCapacity: prepared.VehicleCapacity,
	})
	if err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "Solving CVRP",
		slog.String("backend", backend),
		slog.Int("nodes", len(nodes)),
		slog.Int("vehicles", prepared.VehicleCount),
		slog.Float64("capacity", prepared.VehicleCapacity),
		slog.Int("variables", formulation.Model.NumVars()),
		slog.Int("constraints", len(formulation.Model.Constraints())),
		slog.Duration("time_limit", prepared.TimeLimit),
	)

	res, err := p.solver.Solve(ctx, formulation.Model, milp.SolveOptions{
		TimeLimit: prepared.TimeLimit,
		Verbose:   prepared.Verbose,
	})
	if err != nil {
		return nil, err
	}

	sol := summarize(formulation.Extract(res), res.HasValues(), matrix, nodes)
	sol.Backend = backend
	sol.SolveDuration = p.now().Sub(start)

	p.logger.InfoContext(ctx, "CVRP solved",
		slog.String("status", sol.Status.String()),
		slog.Int("routes", len(sol.Routes)),
		slog.Int("diagnostics", len(sol.Diagnostics)),
		slog.Float64("total_distance_km", sol.TotalDistanceKm),
		slog.Duration("elapsed", sol.SolveDuration),
	)
	p.observe(sol, len(nodes))

	return sol, nil
}

func (p *cvrpPipeline) distanceMatrix(ctx context.Context, coords []entity.Coordinate) (entity.DistanceMatrix, error) {
	if p.cache != nil {
		matrix, ok, err := p.cache.Get(ctx, coords)
		switch {
		case err != nil:
			p.logger.WarnContext(ctx, "Matrix cache read failed", slog.Any("error", err))
		case ok:
			return matrix, nil
		}
	}

	matrix, err := geo.BuildMatrix(ctx, coords, p.planning.MatrixWorkers)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, coords, matrix); err != nil {
			p.logger.WarnContext(ctx, "Matrix cache write failed", slog.Any("error", err))
		}
	}

	return matrix, nil
}

func (p *cvrpPipeline) observe(sol *entity.Solution, nodes int) {
	if p.recorder != nil {
		p.recorder.ObserveSolve(sol.Backend, sol.Status, sol.SolveDuration, nodes)
	}
}

// summarize decodes arcs into routes and attaches lengths and demands.
// Without an assignment there is nothing to decode.
func summarize(sr entity.SolverResult, hasValues bool, matrix entity.DistanceMatrix, nodes []entity.Node) *entity.Solution {
	sol := &entity.Solution{
		Status:    sr.Status,
		Objective: sr.Objective,
		Routes:    []entity.Route{},
	}
	if !hasValues {
		return sol
	}

	decoded := decode.Routes(sr.Arcs, entity.DepotID)
	sol.Diagnostics = decoded.Diagnostics
	for _, route := range decoded.Routes {
		route.LengthKm = matrix.RouteLength(route.Nodes)
		for _, id := range route.Stops() {
			route.Demand += nodes[id].Demand
		}
		sol.TotalDistanceKm += route.LengthKm
		sol.Routes = append(sol.Routes, route)
	}

	return sol
}

func squareZero(n int) entity.DistanceMatrix {
	m := make(entity.DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}
