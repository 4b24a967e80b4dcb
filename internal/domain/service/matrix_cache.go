package service

import (
	"context"

	"fleetplan/internal/domain/entity"
)

// MatrixCache stores distance matrices keyed by the exact coordinate list.
type MatrixCache interface {
	// Get returns the cached matrix, ok is false on a miss.
	Get(ctx context.Context, coords []entity.Coordinate) (entity.DistanceMatrix, bool, error)

	// Set stores a matrix for coords.
	Set(ctx context.Context, coords []entity.Coordinate, matrix entity.DistanceMatrix) error
}
