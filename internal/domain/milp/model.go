// Package milp describes mixed-integer linear programs independently of the
// engine that solves them.
package milp

import (
	"fmt"
	"math"
)

// VarID indexes a variable inside its Model.
type VarID int

// NoVar marks an absent variable slot, e.g. the diagonal of an arc matrix.
const NoVar VarID = -1

// VarKind is the domain of a decision variable.
type VarKind int

const (
	Continuous VarKind = iota
	Binary
)

// Variable is a named decision variable with inclusive bounds.
type Variable struct {
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64
}

// Term is coefficient * variable.
type Term struct {
	Var  VarID
	Coef float64
}

// Expr is a linear expression without a constant part.
type Expr []Term

// Eval computes the expression for an assignment indexed by VarID.
func (e Expr) Eval(values []float64) float64 {
	var sum float64
	for _, t := range e {
		sum += t.Coef * values[t.Var]
	}

	return sum
}

// Sense is the relation of a constraint.
type Sense int

const (
	LessEqual Sense = iota
	Equal
	GreaterEqual
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Constraint is Expr <sense> RHS.
type Constraint struct {
	Name  string
	Expr  Expr
	Sense Sense
	RHS   float64
}

// Model is a minimisation MILP.
type Model struct {
	Name        string
	Objective   Expr
	vars        []Variable
	byName      map[string]VarID
	constraints []Constraint
	conNames    map[string]struct{}
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		byName:   make(map[string]VarID),
		conNames: make(map[string]struct{}),
	}
}

// AddBinary adds a 0/1 variable.
func (m *Model) AddBinary(name string) VarID {
	return m.addVar(Variable{Name: name, Kind: Binary, Lower: 0, Upper: 1})
}

// AddContinuous adds a bounded continuous variable.
func (m *Model) AddContinuous(name string, lower, upper float64) VarID {
	return m.addVar(Variable{Name: name, Kind: Continuous, Lower: lower, Upper: upper})
}

func (m *Model) addVar(v Variable) VarID {
	if _, exists := m.byName[v.Name]; exists {
		panic(fmt.Sprintf("milp: duplicate variable %q", v.Name))
	}
	id := VarID(len(m.vars))
	m.vars = append(m.vars, v)
	m.byName[v.Name] = id

	return id
}

// AddConstraint appends a named linear constraint. Names must be unique.
func (m *Model) AddConstraint(name string, expr Expr, sense Sense, rhs float64) {
	if _, exists := m.conNames[name]; exists {
		panic(fmt.Sprintf("milp: duplicate constraint %q", name))
	}
	m.conNames[name] = struct{}{}
	m.constraints = append(m.constraints, Constraint{Name: name, Expr: expr, Sense: sense, RHS: rhs})
}

// Var returns the variable with the given id.
func (m *Model) Var(id VarID) Variable {
	return m.vars[id]
}

// Vars returns all variables in id order.
func (m *Model) Vars() []Variable {
	return m.vars
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int {
	return len(m.vars)
}

// Lookup finds a variable id by name.
func (m *Model) Lookup(name string) (VarID, bool) {
	id, ok := m.byName[name]

	return id, ok
}

// Constraints returns all constraints in insertion order.
func (m *Model) Constraints() []Constraint {
	return m.constraints
}

// ObjectiveValue evaluates the objective for an assignment.
func (m *Model) ObjectiveValue(values []float64) float64 {
	return m.Objective.Eval(values)
}

// Violation describes a constraint or bound that an assignment breaks.
type Violation struct {
	Name  string
	LHS   float64
	Sense Sense
	RHS   float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %g %s %g", v.Name, v.LHS, v.Sense, v.RHS)
}

// Check reports every bound, integrality and constraint violation of an
// assignment beyond tol. An empty result means the assignment is feasible.
func (m *Model) Check(values []float64, tol float64) []Violation {
	var violations []Violation

	for id, v := range m.vars {
		val := values[id]
		if val < v.Lower-tol {
			violations = append(violations, Violation{Name: v.Name + ".lower", LHS: val, Sense: GreaterEqual, RHS: v.Lower})
		}
		if val > v.Upper+tol {
			violations = append(violations, Violation{Name: v.Name + ".upper", LHS: val, Sense: LessEqual, RHS: v.Upper})
		}
		if v.Kind == Binary && math.Abs(val-math.Round(val)) > tol {
			violations = append(violations, Violation{Name: v.Name + ".integer", LHS: val, Sense: Equal, RHS: math.Round(val)})
		}
	}

	for _, c := range m.constraints {
		lhs := c.Expr.Eval(values)
		var ok bool
		switch c.Sense {
		case LessEqual:
			ok = lhs <= c.RHS+tol
		case Equal:
			ok = math.Abs(lhs-c.RHS) <= tol
		case GreaterEqual:
			ok = lhs >= c.RHS-tol
		}
		if !ok {
			violations = append(violations, Violation{Name: c.Name, LHS: lhs, Sense: c.Sense, RHS: c.RHS})
		}
	}

	return violations
}
