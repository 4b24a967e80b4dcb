package solver

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fleetplan/config"
	"fleetplan/internal/domain/milp"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
)

// BackendHiGHS selects the HiGHS command line solver.
const BackendHiGHS = "highs"

type highsSolver struct {
	engine
}

// NewHiGHS returns a Solver that shells out to the highs binary.
func NewHiGHS(cfg *config.SolverConfig, logger *slog.Logger) service.Solver {
	return &highsSolver{engine: newEngine(BackendHiGHS, "highs", cfg, logger)}
}

func (s *highsSolver) Name() string {
	return BackendHiGHS
}

func (s *highsSolver) Solve(ctx context.Context, model *milp.Model, opts milp.SolveOptions) (*milp.Result, error) {
	binaryPath, dir, lpPath, cleanup, err := s.prepare(model)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	optionsPath := filepath.Join(dir, "highs.opt")
	if err := os.WriteFile(optionsPath, []byte(highsOptions(opts)), 0o600); err != nil {
		return nil, errors.Wrap(err, "write highs options")
	}

	solPath := filepath.Join(dir, "model.sol")
	args := []string{
		"--model_file", lpPath,
		"--options_file", optionsPath,
		"--time_limit", timeLimitSeconds(opts.TimeLimit),
		"--solution_file", solPath,
	}
	if err := s.run(ctx, binaryPath, dir, args, opts.Verbose); err != nil {
		return nil, err
	}

	file, err := os.Open(solPath)
	if err != nil {
		return nil, errors.Wrap(err, "highs wrote no solution file")
	}
	defer file.Close()

	return parseHiGHSSolution(file, model)
}

func highsOptions(opts milp.SolveOptions) string {
	lines := []string{
		"write_solution_to_file = true",
		"write_solution_style = 0",
		"mip_rel_gap = 0",
	}
	if opts.Verbose {
		lines = append(lines, "output_flag = true")
	} else {
		lines = append(lines, "output_flag = false")
	}

	return strings.Join(lines, "\n") + "\n"
}
