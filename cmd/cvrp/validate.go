package main

import (
	"fmt"
	"io"
	"math"
	"os"

	logs "fleetplan/internal/infra/log"
	"fleetplan/internal/infra/routing/loader"
	"fleetplan/internal/usecase"
	"fleetplan/internal/util"
)

func runValidate(input string, vehicles int, capacity float64, w io.Writer) error {
	fmt.Fprintf(w, "Validating node table: %s\n", input)

	table, err := loader.LoadFile(input)
	if err != nil {
		fmt.Fprintf(w, "❌ Validation failed: %v\n", err)

		return err
	}
	fmt.Fprintf(w, "  ✅ Size: %s\n", util.FormatBytes(table.Size))
	fmt.Fprintf(w, "  ✅ SHA-256: %s\n", table.Checksum)
	fmt.Fprintf(w, "  ✅ Nodes: %d (depot + %d customers)\n", len(table.Nodes), len(table.Nodes)-1)

	cfg := cliConfig(solveOptions{Vehicles: vehicles, Capacity: capacity})
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}
	planner, err := newPlanner(cfg, logger)
	if err != nil {
		return err
	}

	prepared, err := planner.Prepare(&usecase.SolveRequest{
		Nodes:           table.Nodes,
		VehicleCount:    vehicles,
		VehicleCapacity: capacity,
	})
	if err != nil {
		fmt.Fprintf(w, "❌ Validation failed: %v\n", err)

		return err
	}

	var total float64
	for _, n := range prepared.Nodes {
		total += n.Demand
	}
	fmt.Fprintf(w, "  ✅ Total demand: %g\n", total)

	// Necessary, not sufficient: bin packing may still need more vehicles.
	if needed := int(math.Ceil(total / prepared.VehicleCapacity)); needed > prepared.VehicleCount {
		fmt.Fprintf(w, "  ⚠️  Warning: total demand needs at least %d vehicles of capacity %g, fleet has %d; the model will be infeasible\n",
			needed, prepared.VehicleCapacity, prepared.VehicleCount)
	} else {
		fmt.Fprintf(w, "  ✅ Fleet capacity: %d x %g\n", prepared.VehicleCount, prepared.VehicleCapacity)
	}

	fmt.Fprintf(w, "  ✅ Time limit: %s\n", util.FormatDuration(prepared.TimeLimit))

	fmt.Fprintln(w, "✅ Validation passed!")

	return nil
}
