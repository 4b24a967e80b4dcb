package solver

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fleetplan/config"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/milp"
	"fleetplan/internal/errors"
)

const (
	// outputTailBytes bounds how much engine output is attached to errors.
	outputTailBytes = 2048
	// waitDelay bounds how long a killed engine may keep its output pipes open.
	waitDelay = 2 * time.Second
)

// engine runs an external MILP binary against files in a scratch directory.
type engine struct {
	name      string
	binary    string
	workDir   string
	keepFiles bool
	logger    *slog.Logger
}

func newEngine(name, defaultBinary string, cfg *config.SolverConfig, logger *slog.Logger) engine {
	binary := cfg.BinaryPath
	if binary == "" {
		binary = defaultBinary
	}
	if logger == nil {
		logger = slog.Default()
	}

	return engine{
		name:      name,
		binary:    binary,
		workDir:   cfg.WorkDir,
		keepFiles: cfg.KeepFiles,
		logger:    logger.With(slog.String("solver", name)),
	}
}

// prepare resolves the binary and creates a scratch directory holding the LP model.
func (e engine) prepare(model *milp.Model) (binaryPath, dir, lpPath string, cleanup func(), err error) {
	binaryPath, err = exec.LookPath(e.binary)
	if err != nil {
		return "", "", "", nil, errors.Wrapf(domainerrors.ErrSolverUnavailable, "%s not found: %v", e.binary, err)
	}

	dir, err = os.MkdirTemp(e.workDir, "fleetplan-"+e.name+"-")
	if err != nil {
		return "", "", "", nil, errors.Wrap(err, "create solver work dir")
	}
	cleanup = func() {
		if e.keepFiles {
			e.logger.Info("Keeping solver files", slog.String("dir", dir))

			return
		}
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			e.logger.Warn("Failed to remove solver work dir", slog.String("dir", dir), slog.Any("error", rmErr))
		}
	}

	lpPath = filepath.Join(dir, "model.lp")
	file, err := os.Create(lpPath)
	if err != nil {
		cleanup()

		return "", "", "", nil, errors.Wrap(err, "create lp file")
	}
	if err := errors.CloseAfter(file, WriteLP(file, model), "write lp file"); err != nil {
		cleanup()

		return "", "", "", nil, err
	}

	return binaryPath, dir, lpPath, cleanup, nil
}

// run executes the binary, logging its output when verbose. Cancelling ctx
// kills the process.
func (e engine) run(ctx context.Context, binaryPath, dir string, args []string, verbose bool) error {
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	startTime := time.Now()
	err := cmd.Run()
	duration := time.Since(startTime)

	if verbose {
		for _, line := range strings.Split(strings.TrimRight(output.String(), "\n"), "\n") {
			e.logger.Info(line)
		}
	}
	e.logger.Debug("Solver finished", slog.Duration("duration", duration), slog.Any("error", err))

	if ctx.Err() != nil {
		return errors.Wrap(ctx.Err(), "solver canceled")
	}
	if err != nil {
		return errors.Wrapf(domainerrors.ErrSolverFailed, "%s: %v: %s", e.name, err, tail(output.Bytes()))
	}

	return nil
}

// timeLimitSeconds renders a duration for engines that take whole or fractional seconds.
func timeLimitSeconds(limit time.Duration) string {
	if limit <= 0 {
		// Engines treat a missing limit as unlimited; keep runs bounded.
		limit = config.DefaultSolverTimeLimit
	}
	secs := math.Max(math.Ceil(limit.Seconds()), 1)

	return strconv.FormatInt(int64(secs), 10)
}

func tail(b []byte) string {
	if len(b) > outputTailBytes {
		b = b[len(b)-outputTailBytes:]
	}

	return strings.TrimSpace(string(b))
}
