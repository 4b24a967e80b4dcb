package service

import (
	"time"

	"fleetplan/internal/domain/entity"
)

// SolveRecorder receives one observation per finished pipeline run.
type SolveRecorder interface {
	ObserveSolve(backend string, status entity.SolveStatus, duration time.Duration, nodes int)
}
