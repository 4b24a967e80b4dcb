// Package solver adapts external MILP engines to the Solver service.
package solver

import (
	"log/slog"
	"strings"

	"fleetplan/config"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the solver, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the backend named by solver.backend.
func New(params Params) (service.Solver, error) {
	cfg := params.Config.Solver
	if cfg == nil {
		cfg = &config.SolverConfig{}
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendCBC:
		return NewCBC(cfg, params.Logger), nil
	case BackendHiGHS:
		return NewHiGHS(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unsupported solver backend: %s", cfg.Backend)
	}
}
