package repository

import (
	"context"

	"fleetplan/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanRepository defines the persistence operations for routing plans.
type PlanRepository interface {
	// Create stores a new plan with its input nodes.
	Create(ctx context.Context, plan *entity.Plan) error

	// FindByID loads a plan and its routes.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// List returns plans newest first without routes or nodes.
	List(ctx context.Context, limit, offset int) ([]*entity.Plan, error)

	// SaveResult replaces the plan's routes and stores its solve outcome.
	SaveResult(ctx context.Context, plan *entity.Plan) error

	// MarkFailed records a pipeline error on the plan.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}
