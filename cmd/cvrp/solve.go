package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"text/tabwriter"
	"time"

	"fleetplan/config"
	"fleetplan/internal/domain/entity"
	"fleetplan/internal/infra/export"
	logs "fleetplan/internal/infra/log"
	"fleetplan/internal/infra/routing/loader"
	"fleetplan/internal/infra/solver"
	"fleetplan/internal/usecase"
	"fleetplan/internal/usecase/impl"

	"github.com/pkg/errors"
)

// Local runs are bounded by the machine, not by a service limit.
const cliMaxNodes = 1 << 20

type solveOptions struct {
	Input      string
	Vehicles   int
	Capacity   float64
	TimeLimit  time.Duration
	Backend    string
	SolverPath string
	Output     string
	GeoJSON    string
	Bucket     string
	Verbose    bool
}

func cliConfig(opts solveOptions) *config.Config {
	cfg := &config.Config{
		Solver: &config.SolverConfig{
			Backend:    opts.Backend,
			BinaryPath: opts.SolverPath,
			TimeLimit:  opts.TimeLimit,
			Verbose:    opts.Verbose,
		},
		Planning: &config.PlanningConfig{
			DefaultVehicleCount:    opts.Vehicles,
			DefaultVehicleCapacity: opts.Capacity,
			MaxNodes:               cliMaxNodes,
		},
	}
	cfg.Env.ServiceName = "cvrp"
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "warn"
	if opts.Verbose {
		cfg.Env.Log.Level = "debug"
	}
	cfg.ApplyDefaults()

	return cfg
}

func newPlanner(cfg *config.Config, logger *slog.Logger) (usecase.RoutePlanner, error) {
	solverSvc, err := solver.New(solver.Params{Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return impl.NewCVRPPipeline(impl.CVRPPipelineParams{
		Config: cfg,
		Logger: logger,
		Solver: solverSvc,
	}), nil
}

func runSolve(ctx context.Context, opts solveOptions, w io.Writer) error {
	cfg := cliConfig(opts)
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	table, err := loader.LoadFile(opts.Input)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Loaded %d nodes from %s\n", len(table.Nodes), table.Source)

	planner, err := newPlanner(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Solving with %s (K=%d, Q=%g, limit %s)...\n", cfg.Solver.Backend, opts.Vehicles, opts.Capacity, opts.TimeLimit)
	sol, err := planner.Plan(ctx, &usecase.SolveRequest{
		Nodes:           table.Nodes,
		VehicleCount:    opts.Vehicles,
		VehicleCapacity: opts.Capacity,
		TimeLimit:       opts.TimeLimit,
		Verbose:         opts.Verbose,
	})
	if err != nil {
		return err
	}

	printSolution(w, sol)

	var csvBuf bytes.Buffer
	if err := export.WriteRoutesCSV(&csvBuf, sol.Routes); err != nil {
		return err
	}
	if err := os.WriteFile(opts.Output, csvBuf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write route table")
	}
	fmt.Fprintf(w, "Route table written to %s\n", opts.Output)

	var geoData []byte
	if opts.GeoJSON != "" || opts.Bucket != "" {
		if geoData, err = export.RoutesGeoJSON(table.Nodes, sol.Routes); err != nil {
			return err
		}
	}
	if opts.GeoJSON != "" {
		if err := os.WriteFile(opts.GeoJSON, geoData, 0o644); err != nil {
			return errors.Wrap(err, "write route map")
		}
		fmt.Fprintf(w, "Route map written to %s\n", opts.GeoJSON)
	}

	if opts.Bucket != "" {
		return uploadArtifacts(ctx, opts.Bucket, table.Checksum, csvBuf.Bytes(), geoData, w)
	}

	return nil
}

// uploadArtifacts stores both files under the input checksum so reruns of
// the same table overwrite each other.
func uploadArtifacts(ctx context.Context, bucketURL, checksum string, csvData, geoData []byte, w io.Writer) error {
	store, err := export.OpenBlobStore(ctx, bucketURL, "")
	if err != nil {
		return err
	}
	defer store.Close()

	dir := checksum
	if len(dir) > 12 {
		dir = dir[:12]
	}

	for _, artifact := range []struct {
		name, contentType string
		data              []byte
	}{
		{"routes.csv", export.ContentTypeCSV, csvData},
		{"routes.geojson", export.ContentTypeGeoJSON, geoData},
	} {
		location, err := store.Put(ctx, path.Join(dir, artifact.name), artifact.contentType, artifact.data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Uploaded %s\n", location)
	}

	return nil
}

func printSolution(w io.Writer, sol *entity.Solution) {
	fmt.Fprintf(w, "\nSolver status: %s\n", sol.Status)
	if sol.Objective != nil {
		fmt.Fprintf(w, "Total distance: %.2f km\n", *sol.Objective)
	} else {
		fmt.Fprintln(w, "Total distance: n/a (no solution values)")
	}
	fmt.Fprintf(w, "Solve time: %s\n", sol.SolveDuration.Round(time.Millisecond))

	if len(sol.Routes) == 0 {
		fmt.Fprintln(w, "No routes found")

		return
	}

	fmt.Fprintln(w, "")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Vehicle\tRoute\tLength km\tDemand\t")
	for _, r := range sol.Routes {
		stops := make([]string, len(r.Nodes))
		for i, id := range r.Nodes {
			stops[i] = fmt.Sprint(id)
		}
		marker := ""
		if !r.WellFormed {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%.2f\t%g\t\n", r.ID, strings.Join(stops, " → "), marker, r.LengthKm, r.Demand)
	}
	_ = tw.Flush()

	if len(sol.Diagnostics) > 0 {
		fmt.Fprintln(w, "\nDecoder diagnostics (* marks repaired routes):")
		for _, d := range sol.Diagnostics {
			if d.RouteID > 0 {
				fmt.Fprintf(w, "  - %s at node %d (route %d)\n", d.Kind, d.Node, d.RouteID)
			} else {
				fmt.Fprintf(w, "  - %s at node %d\n", d.Kind, d.Node)
			}
		}
	}
}
