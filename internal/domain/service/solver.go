package service

import (
	"context"

	"fleetplan/internal/domain/milp"
)

// Solver is a MILP engine. Implementations translate the model into the
// engine's input, run it under opts and map its verdict onto milp.Result.
// A time-limit stop is a result, not an error; errors mean the engine could
// not be run or produced nothing readable.
type Solver interface {
	// Name identifies the backend in logs, metrics and stored plans.
	Name() string

	// Solve minimises model within opts.TimeLimit.
	Solve(ctx context.Context, model *milp.Model, opts milp.SolveOptions) (*milp.Result, error)
}
