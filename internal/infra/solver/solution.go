package solver

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"fleetplan/internal/domain/entity"
	"fleetplan/internal/domain/milp"

	"github.com/pkg/errors"
)

var cbcObjectivePattern = regexp.MustCompile(`objective value\s+([-+0-9.eE]+)`)

// parseCBCSolution reads the file CBC writes with -solution. The first line
// holds the verdict and objective, then one "index name value reduced-cost"
// row per column, optionally prefixed by "**" for infeasible columns.
func parseCBCSolution(r io.Reader, model *milp.Model) (*milp.Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read cbc solution header")
		}

		return nil, errors.New("cbc solution file is empty")
	}
	header := strings.TrimSpace(scanner.Text())
	status, hasIncumbent := cbcStatus(header)
	result := &milp.Result{Status: status}

	if !hasIncumbent {
		return result, nil
	}

	if m := cbcObjectivePattern.FindStringSubmatch(header); m != nil {
		if obj, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Objective = &obj
		}
	}

	values := make([]float64, model.NumVars())
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 && fields[0] == "**" {
			fields = fields[1:]
		}
		if len(fields) < 3 {
			continue
		}

		id, ok := model.Lookup(fields[1])
		if !ok {
			continue
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Errorf("invalid value %q for %s at line %d", fields[2], fields[1], lineNum)
		}
		values[id] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read cbc solution")
	}
	result.Values = values

	return result, nil
}

// cbcStatus maps CBC's verdict line onto a status and whether the file carries
// a usable assignment.
func cbcStatus(header string) (entity.SolveStatus, bool) {
	lower := strings.ToLower(header)
	switch {
	case strings.HasPrefix(lower, "optimal"):
		return entity.SolveStatusOptimal, true
	case strings.HasPrefix(lower, "infeasible"), strings.HasPrefix(lower, "integer infeasible"):
		return entity.SolveStatusInfeasible, false
	case strings.HasPrefix(lower, "unbounded"):
		return entity.SolveStatusUnbounded, false
	case strings.HasPrefix(lower, "stopped on time"):
		return entity.SolveStatusTimeLimitReached, !strings.Contains(lower, "no integer solution")
	default:
		return entity.SolveStatusNotSolved, false
	}
}

// parseHiGHSSolution reads a raw-style HiGHS solution file:
//
//	Model status
//	Optimal
//
//	# Primal solution values
//	Feasible
//	Objective 12.5
//	# Columns 3
//	x 1
//	...
func parseHiGHSSolution(r io.Reader, model *milp.Model) (*milp.Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	result := &milp.Result{Status: entity.SolveStatusNotSolved}
	var (
		sawStatus    bool
		hasIncumbent bool
		feasible     bool
		values       []float64
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "Model status":
			if !scanner.Scan() {
				return nil, errors.New("highs solution file ends after model status header")
			}
			result.Status, hasIncumbent = highsStatus(strings.TrimSpace(scanner.Text()))
			sawStatus = true

		case line == "# Primal solution values":
			if !scanner.Scan() {
				return nil, errors.New("highs solution file ends after primal header")
			}
			feasible = strings.EqualFold(strings.TrimSpace(scanner.Text()), "Feasible")

		case strings.HasPrefix(line, "Objective "):
			if obj, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, "Objective ")), 64); err == nil && feasible {
				result.Objective = &obj
			}

		case strings.HasPrefix(line, "# Columns "):
			if values != nil || !feasible {
				continue
			}
			count, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "# Columns ")))
			if err != nil {
				return nil, errors.Errorf("invalid column count in %q", line)
			}
			values = make([]float64, model.NumVars())
			if err := readHiGHSColumns(scanner, model, count, values); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read highs solution")
	}
	if !sawStatus {
		return nil, errors.New("highs solution file has no model status")
	}

	if hasIncumbent && feasible && values != nil {
		result.Values = values
	} else {
		result.Objective = nil
	}

	return result, nil
}

func readHiGHSColumns(scanner *bufio.Scanner, model *milp.Model, count int, values []float64) error {
	for range count {
		if !scanner.Scan() {
			return errors.New("highs solution file ends inside column block")
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		id, ok := model.Lookup(fields[0])
		if !ok {
			continue
		}
		val, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return errors.Errorf("invalid value %q for %s", fields[len(fields)-1], fields[0])
		}
		values[id] = val
	}

	return nil
}

func highsStatus(text string) (entity.SolveStatus, bool) {
	switch strings.ToLower(text) {
	case "optimal":
		return entity.SolveStatusOptimal, true
	case "infeasible", "primal infeasible or unbounded":
		return entity.SolveStatusInfeasible, false
	case "unbounded":
		return entity.SolveStatusUnbounded, false
	case "time limit reached":
		return entity.SolveStatusTimeLimitReached, true
	default:
		return entity.SolveStatusNotSolved, false
	}
}
