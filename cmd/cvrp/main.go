package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - solve:    Solve a node table and write the route table
// - validate: Check a node table against a fleet
// - token:    Issue an API access token

func main() {
	solveCmd := flag.NewFlagSet("solve", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// solve parameters
	solveInput := solveCmd.String("input", "", "Node table (.csv or .xlsx)")
	solveVehicles := solveCmd.Int("vehicles", 3, "Number of vehicles K")
	solveCapacity := solveCmd.Float64("capacity", 10, "Vehicle capacity Q")
	solveTimeLimit := solveCmd.Duration("time-limit", 40*time.Second, "Solver wall-clock budget")
	solveBackend := solveCmd.String("backend", "cbc", "MILP engine (cbc, highs)")
	solveBinary := solveCmd.String("solver-path", "", "Engine executable, defaults to PATH lookup")
	solveOutput := solveCmd.String("output", "solution_routes.csv", "Route table output path")
	solveGeoJSON := solveCmd.String("geojson", "", "Optional GeoJSON output path")
	solveBucket := solveCmd.String("bucket", "", "Optional bucket URL to upload the artifacts to (file://, gs://, s3://, mem://)")
	solveVerbose := solveCmd.Bool("verbose", false, "Forward the engine log")

	// validate parameters
	validateInput := validateCmd.String("input", "", "Node table (.csv or .xlsx)")
	validateVehicles := validateCmd.Int("vehicles", 3, "Number of vehicles K")
	validateCapacity := validateCmd.Float64("capacity", 10, "Vehicle capacity Q")

	// token parameters
	tokenSubject := tokenCmd.String("subject", "", "Token subject, e.g. the client name")
	tokenScopes := tokenCmd.String("scopes", "plans:read,plans:write", "Comma separated scopes")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "Token lifetime")
	tokenIssuer := tokenCmd.String("issuer", "", "Token issuer, defaults to fleetplan")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := cliFlags{
		Solve: solveFlags{
			cmd:        solveCmd,
			input:      solveInput,
			vehicles:   solveVehicles,
			capacity:   solveCapacity,
			timeLimit:  solveTimeLimit,
			backend:    solveBackend,
			solverPath: solveBinary,
			output:     solveOutput,
			geojson:    solveGeoJSON,
			bucket:     solveBucket,
			verbose:    solveVerbose,
		},
		Validate: validateFlags{
			cmd:      validateCmd,
			input:    validateInput,
			vehicles: validateVehicles,
			capacity: validateCapacity,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			scopes:  tokenScopes,
			ttl:     tokenTTL,
			issuer:  tokenIssuer,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Solve    solveFlags
	Validate validateFlags
	Token    tokenFlags
}

type solveFlags struct {
	cmd        *flag.FlagSet
	input      *string
	vehicles   *int
	capacity   *float64
	timeLimit  *time.Duration
	backend    *string
	solverPath *string
	output     *string
	geojson    *string
	bucket     *string
	verbose    *bool
}

type validateFlags struct {
	cmd      *flag.FlagSet
	input    *string
	vehicles *int
	capacity *float64
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	scopes  *string
	ttl     *time.Duration
	issuer  *string
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "solve":
		return handleSolve(ctx, flags)
	case "validate":
		return handleValidate(flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleSolve(ctx context.Context, flags *cliFlags) error {
	f := flags.Solve
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse solve flags")
	}
	if *f.input == "" {
		return errors.New("--input flag is required for solve command")
	}

	return runSolve(ctx, solveOptions{
		Input:      *f.input,
		Vehicles:   *f.vehicles,
		Capacity:   *f.capacity,
		TimeLimit:  *f.timeLimit,
		Backend:    *f.backend,
		SolverPath: *f.solverPath,
		Output:     *f.output,
		GeoJSON:    *f.geojson,
		Bucket:     *f.bucket,
		Verbose:    *f.verbose,
	}, os.Stdout)
}

func handleValidate(flags *cliFlags) error {
	f := flags.Validate
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}
	if *f.input == "" {
		return errors.New("--input flag is required for validate command")
	}

	return runValidate(*f.input, *f.vehicles, *f.capacity, os.Stdout)
}

func handleToken(flags *cliFlags) error {
	f := flags.Token
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}
	if *f.subject == "" {
		return errors.New("--subject flag is required for token command")
	}

	return runToken(os.Getenv("SECRETKEY_ACCESS"), *f.issuer, *f.subject, *f.scopes, *f.ttl, os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: cvrp <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  solve       Solve a node table and write the route table")
	fmt.Println("  validate    Check a node table against a fleet")
	fmt.Println("  token       Issue an API access token (secret from SECRETKEY_ACCESS)")
	fmt.Println("")
	fmt.Println("Use 'cvrp <command> -h' for more information about a command.")
}
