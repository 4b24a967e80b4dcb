package entity

// SolveStatus is the outcome reported by the MILP engine.
type SolveStatus string

const (
	// SolveStatusOptimal means the incumbent is proven optimal.
	SolveStatusOptimal SolveStatus = "Optimal"
	// SolveStatusInfeasible means no assignment satisfies the constraints.
	SolveStatusInfeasible SolveStatus = "Infeasible"
	// SolveStatusUnbounded means the objective can decrease without limit.
	SolveStatusUnbounded SolveStatus = "Unbounded"
	// SolveStatusTimeLimitReached means the time budget expired, the incumbent may be suboptimal.
	SolveStatusTimeLimitReached SolveStatus = "TimeLimitReached"
	// SolveStatusNotSolved means the engine stopped without a verdict.
	SolveStatusNotSolved SolveStatus = "NotSolved"
)

// String returns the string representation of the SolveStatus.
func (s SolveStatus) String() string {
	return string(s)
}

// IsValid checks if the SolveStatus is a known value.
func (s SolveStatus) IsValid() bool {
	switch s {
	case SolveStatusOptimal, SolveStatusInfeasible, SolveStatusUnbounded,
		SolveStatusTimeLimitReached, SolveStatusNotSolved:
		return true
	default:
		return false
	}
}

// HasIncumbent reports whether routes decoded under this status are meaningful.
func (s SolveStatus) HasIncumbent() bool {
	return s == SolveStatusOptimal || s == SolveStatusTimeLimitReached
}
