package solver

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"fleetplan/config"
	"fleetplan/internal/domain/milp"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
)

// BackendCBC selects the COIN-OR CBC command line solver.
const BackendCBC = "cbc"

type cbcSolver struct {
	engine
}

// NewCBC returns a Solver that shells out to the cbc binary.
func NewCBC(cfg *config.SolverConfig, logger *slog.Logger) service.Solver {
	return &cbcSolver{engine: newEngine(BackendCBC, "cbc", cfg, logger)}
}

func (s *cbcSolver) Name() string {
	return BackendCBC
}

func (s *cbcSolver) Solve(ctx context.Context, model *milp.Model, opts milp.SolveOptions) (*milp.Result, error) {
	binaryPath, dir, lpPath, cleanup, err := s.prepare(model)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	solPath := filepath.Join(dir, "model.sol")
	if err := s.run(ctx, binaryPath, dir, cbcArgs(lpPath, solPath, opts), opts.Verbose); err != nil {
		return nil, err
	}

	file, err := os.Open(solPath)
	if err != nil {
		return nil, errors.Wrap(err, "cbc wrote no solution file")
	}
	defer file.Close()

	return parseCBCSolution(file, model)
}

// cbcArgs follows CBC's sequential command syntax: options apply to the
// commands that come after them.
func cbcArgs(lpPath, solPath string, opts milp.SolveOptions) []string {
	logLevel := "0"
	if opts.Verbose {
		logLevel = "1"
	}

	return []string{
		lpPath,
		"-log", logLevel,
		"-sec", timeLimitSeconds(opts.TimeLimit),
		"-timeMode", "elapsed",
		"-branch",
		"-printingOptions", "all",
		"-solution", solPath,
	}
}
