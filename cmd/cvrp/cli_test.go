package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fleetplan/config"
	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesCSV = `id,lat,lon,demanda
0,-23.5505,-46.6333,0
1,-23.5874,-46.6576,3
2,-23.5614,-46.6559,4
3,-23.5329,-46.6395,5
`

func writeNodes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nodes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer

	err := runValidate(writeNodes(t, nodesCSV), 3, 10, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Nodes: 4 (depot + 3 customers)")
	assert.Contains(t, out.String(), "Total demand: 12")
	assert.Contains(t, out.String(), "Fleet capacity: 3 x 10")
	assert.Contains(t, out.String(), "Validation passed!")
}

func TestRunValidate_WarnsOnSmallFleet(t *testing.T) {
	var out bytes.Buffer

	err := runValidate(writeNodes(t, nodesCSV), 1, 10, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "needs at least 2 vehicles")
}

func TestRunValidate_DemandAboveCapacity(t *testing.T) {
	var out bytes.Buffer

	err := runValidate(writeNodes(t, nodesCSV), 3, 4, &out)

	assert.ErrorIs(t, err, domainerrors.ErrDemandExceedsCapacity)
	assert.Contains(t, out.String(), "Validation failed")
}

func TestRunToken(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runToken("cli-secret", "", "dispatch", "plans:read, plans:write", time.Hour, &out))

	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.SecretKey.Access = "cli-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	claims, err := tokenSvc.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "dispatch", claims.Subject)
	assert.Equal(t, []string{"plans:read", "plans:write"}, claims.Scopes)
}

func TestRunToken_RequiresSecret(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, runToken("", "", "dispatch", "", time.Hour, &out))
	assert.Empty(t, out.String())
}

func TestPrintSolution(t *testing.T) {
	objective := 23.0
	sol := &entity.Solution{
		Status:    entity.SolveStatusTimeLimitReached,
		Objective: &objective,
		Routes: []entity.Route{
			{ID: 1, Nodes: []int{0, 1, 2, 0}, LengthKm: 11, Demand: 7, Origin: entity.RouteOriginPrimary, WellFormed: true},
			{ID: 2, Nodes: []int{0, 3, 0}, LengthKm: 12, Demand: 5, Origin: entity.RouteOriginRecovery},
		},
		Diagnostics: []entity.RouteDiagnostic{
			{Kind: entity.DiagnosticOrphanRecovered, Node: 3, RouteID: 2},
		},
		SolveDuration: 2 * time.Second,
	}

	var out bytes.Buffer
	printSolution(&out, sol)

	assert.Contains(t, out.String(), "Solver status: TimeLimitReached")
	assert.Contains(t, out.String(), "Total distance: 23.00 km")
	assert.Contains(t, out.String(), "0 → 1 → 2 → 0")
	assert.Contains(t, out.String(), "0 → 3 → 0 *")
	assert.Contains(t, out.String(), "orphan_recovered at node 3 (route 2)")
}

func TestPrintSolution_NoValues(t *testing.T) {
	var out bytes.Buffer
	printSolution(&out, &entity.Solution{Status: entity.SolveStatusInfeasible})

	assert.Contains(t, out.String(), "n/a")
	assert.Contains(t, out.String(), "No routes found")
}
