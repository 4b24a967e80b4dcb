package solver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"fleetplan/config"
	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/milp"
	"fleetplan/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCBC mimics cbc: it records its arguments next to itself and writes a
// fixed solution to the path following -solution.
const fakeCBC = `#!/bin/sh
echo "$@" > "$(dirname "$0")/args.txt"
cp "$1" "$(dirname "$0")/seen.lp"
sol=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-solution" ]; then sol="$2"; fi
  shift
done
cat > "$sol" <<'SOL'
Optimal - objective value 5.00000000
      0 x_0_1                        1                       2.5
      1 x_1_0                        1                       2.5
      3 u_1                          3                         0
SOL
echo "Result - Optimal solution found"
`

const fakeHiGHS = `#!/bin/sh
echo "$@" > "$(dirname "$0")/args.txt"
sol=""
while [ $# -gt 0 ]; do
  if [ "$1" = "--solution_file" ]; then sol="$2"; fi
  shift
done
cat > "$sol" <<'SOL'
Model status
Time limit reached

# Primal solution values
Feasible
Objective 5
# Columns 4
x_0_1 1
x_1_0 1
u_0 0
u_1 3
SOL
`

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))

	return path
}

func TestCBCSolver_Solve(t *testing.T) {
	binary := writeScript(t, "cbc", fakeCBC)
	s := NewCBC(&config.SolverConfig{BinaryPath: binary, WorkDir: t.TempDir()}, nil)

	res, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{TimeLimit: 1500 * time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, BackendCBC, s.Name())
	assert.Equal(t, entity.SolveStatusOptimal, res.Status)
	require.NotNil(t, res.Objective)
	assert.InDelta(t, 5.0, *res.Objective, 1e-9)
	assert.Equal(t, []float64{1, 1, 0, 3}, res.Values)

	args, err := os.ReadFile(filepath.Join(filepath.Dir(binary), "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "-sec 2 -timeMode elapsed")
	assert.Contains(t, string(args), "-log 0")

	lp, err := os.ReadFile(filepath.Join(filepath.Dir(binary), "seen.lp"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(lp), `\* CVRP_MTZ *\`))
}

func TestCBCSolver_RemovesWorkDir(t *testing.T) {
	binary := writeScript(t, "cbc", fakeCBC)
	workDir := t.TempDir()
	s := NewCBC(&config.SolverConfig{BinaryPath: binary, WorkDir: workDir}, nil)

	_, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{TimeLimit: time.Second})
	require.NoError(t, err)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHiGHSSolver_Solve(t *testing.T) {
	binary := writeScript(t, "highs", fakeHiGHS)
	s := NewHiGHS(&config.SolverConfig{BinaryPath: binary, WorkDir: t.TempDir()}, nil)

	res, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{TimeLimit: 30 * time.Second, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, BackendHiGHS, s.Name())
	assert.Equal(t, entity.SolveStatusTimeLimitReached, res.Status)
	assert.Equal(t, []float64{1, 1, 0, 3}, res.Values)

	args, err := os.ReadFile(filepath.Join(filepath.Dir(binary), "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "--time_limit 30")
	assert.Contains(t, string(args), "--options_file")
}

func TestSolver_MissingBinary(t *testing.T) {
	s := NewCBC(&config.SolverConfig{BinaryPath: filepath.Join(t.TempDir(), "no-such-cbc")}, nil)

	_, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSolverUnavailable))
}

func TestSolver_ProcessFailure(t *testing.T) {
	binary := writeScript(t, "cbc", "#!/bin/sh\necho 'Coin0001I read error'\nexit 3\n")
	s := NewCBC(&config.SolverConfig{BinaryPath: binary, WorkDir: t.TempDir()}, nil)

	_, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{TimeLimit: time.Second})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSolverFailed))
	assert.Contains(t, err.Error(), "read error")
}

func TestSolver_NoSolutionFile(t *testing.T) {
	binary := writeScript(t, "cbc", "#!/bin/sh\nexit 0\n")
	s := NewCBC(&config.SolverConfig{BinaryPath: binary, WorkDir: t.TempDir()}, nil)

	_, err := s.Solve(context.Background(), twoNodeModel(), milp.SolveOptions{TimeLimit: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no solution file")
}

func TestSolver_Canceled(t *testing.T) {
	binary := writeScript(t, "cbc", "#!/bin/sh\nexec sleep 10\n")
	s := NewCBC(&config.SolverConfig{BinaryPath: binary, WorkDir: t.TempDir()}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.Solve(ctx, twoNodeModel(), milp.SolveOptions{TimeLimit: time.Minute})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNew_SelectsBackend(t *testing.T) {
	for backend, want := range map[string]string{"": BackendCBC, "CBC": BackendCBC, "highs": BackendHiGHS} {
		cfg := &config.Config{Solver: &config.SolverConfig{Backend: backend}}
		s, err := New(Params{Config: cfg})
		require.NoError(t, err)
		assert.Equal(t, want, s.Name())
	}

	_, err := New(Params{Config: &config.Config{Solver: &config.SolverConfig{Backend: "gurobi"}}})
	require.Error(t, err)
}

func TestTimeLimitSeconds(t *testing.T) {
	assert.Equal(t, "1", timeLimitSeconds(100*time.Millisecond))
	assert.Equal(t, "2", timeLimitSeconds(1500*time.Millisecond))
	assert.Equal(t, "60", timeLimitSeconds(0))
	assert.Equal(t, "3600", timeLimitSeconds(time.Hour))
}
