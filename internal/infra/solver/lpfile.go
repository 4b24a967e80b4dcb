package solver

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"fleetplan/internal/domain/milp"

	"github.com/pkg/errors"
)

// termsPerLine keeps rows well below the 255 character limit some LP readers enforce.
const termsPerLine = 8

// WriteLP serialises model in CPLEX LP format, which both CBC and HiGHS read.
func WriteLP(w io.Writer, model *milp.Model) error {
	bw := bufio.NewWriter(w)
	lw := &lpWriter{w: bw, model: model}

	lw.printf(`\* `, model.Name, ` *\`, "\n")
	lw.printf("Minimize\n")
	objective := model.Objective
	if len(objective) == 0 && model.NumVars() > 0 {
		// LP readers require at least one objective term.
		objective = milp.Expr{{Var: 0, Coef: 0}}
	}
	lw.row("OBJ", objective)
	lw.printf("\n")

	lw.printf("Subject To\n")
	for _, c := range model.Constraints() {
		lw.row(c.Name, c.Expr)
		lw.printf(" ", senseToken(c.Sense), " ", formatNumber(c.RHS), "\n")
	}

	lw.printf("Bounds\n")
	var binaries []string
	for _, v := range model.Vars() {
		if v.Kind == milp.Binary {
			binaries = append(binaries, v.Name)

			continue
		}
		lw.printf(" ", formatBound(v.Lower), " <= ", v.Name, " <= ", formatBound(v.Upper), "\n")
	}

	if len(binaries) > 0 {
		lw.printf("Binaries\n")
		for k, name := range binaries {
			lw.printf(" ", name)
			if (k+1)%termsPerLine == 0 || k == len(binaries)-1 {
				lw.printf("\n")
			}
		}
	}
	lw.printf("End\n")

	if lw.err != nil {
		return errors.Wrap(lw.err, "write lp model")
	}

	return errors.Wrap(bw.Flush(), "flush lp model")
}

type lpWriter struct {
	w     *bufio.Writer
	model *milp.Model
	err   error
}

func (lw *lpWriter) printf(parts ...string) {
	for _, p := range parts {
		if lw.err != nil {
			return
		}
		_, lw.err = lw.w.WriteString(p)
	}
}

func (lw *lpWriter) row(name string, expr milp.Expr) {
	lw.printf(" ", name, ":")
	for k, t := range expr {
		if k > 0 && k%termsPerLine == 0 {
			lw.printf("\n  ")
		}
		sign := "+"
		coef := t.Coef
		if coef < 0 || (coef == 0 && math.Signbit(coef)) {
			sign = "-"
			coef = -coef
		}
		lw.printf(" ", sign, " ", formatNumber(coef), " ", lw.model.Var(t.Var).Name)
	}
}

func senseToken(s milp.Sense) string {
	switch s {
	case milp.LessEqual:
		return "<="
	case milp.GreaterEqual:
		return ">="
	case milp.Equal:
		return "="
	default:
		return "="
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return formatNumber(v)
	}
}
