package postgres

import (
	"context"
	"encoding/json"
	"time"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/repository"
	"fleetplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create persists a new plan with its input nodes.
func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	if plan.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate plan ID")
		}
		plan.ID = id
	}

	planM, err := fromPlanDomain(plan)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Routes").Create(planM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("plan already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plan information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// FindByID retrieves a plan and its routes ordered by route index.
func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Routes", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_index ASC")
		}).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by ID")
	}

	return toPlanDomain(&planM)
}

// List returns plan headers, newest first.
func (repo *planRepository) List(ctx context.Context, limit, offset int) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	if err := repo.db.WithContext(ctx).
		Omit("Nodes", "Diagnostics").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plan, err := toPlanDomain(planM)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// SaveResult replaces the plan's routes and updates its outcome columns.
// Callers wrap it in a transaction so routes and header change together.
func (repo *planRepository) SaveResult(ctx context.Context, plan *entity.Plan) error {
	diagnostics, err := json.Marshal(plan.Diagnostics)
	if err != nil {
		return errors.Wrap(err, "failed to encode diagnostics")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"state":             plan.State.String(),
			"status":            plan.Status.String(),
			"backend":           plan.Backend,
			"objective":         plan.Objective,
			"total_distance_km": plan.TotalDistanceKm,
			"diagnostics":       datatypes.JSON(diagnostics),
			"solve_ms":          plan.SolveDuration.Milliseconds(),
			"error_message":     plan.ErrorMessage,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save plan result")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPlanNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("plan_id = ?", plan.ID).
		Delete(&model.PlanRouteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear plan routes")
	}

	routes := fromRoutesDomain(plan.ID, plan.Routes)
	if len(routes) == 0 {
		return nil
	}
	if err := repo.db.WithContext(ctx).Create(&routes).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save plan routes")
	}

	return nil
}

// MarkFailed records a pipeline error on the plan.
func (repo *planRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":         entity.PlanStateFailed.String(),
			"error_message": message,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark plan failed")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPlanNotFound
	}

	return nil
}

func fromPlanDomain(plan *entity.Plan) (*model.PlanModel, error) {
	nodes, err := json.Marshal(plan.Nodes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode nodes")
	}
	diagnostics, err := json.Marshal(plan.Diagnostics)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode diagnostics")
	}

	return &model.PlanModel{
		ID:              plan.ID,
		State:           plan.State.String(),
		Status:          plan.Status.String(),
		Backend:         plan.Backend,
		VehicleCount:    plan.VehicleCount,
		VehicleCapacity: plan.VehicleCapacity,
		TimeLimitMs:     plan.TimeLimit.Milliseconds(),
		NodeCount:       len(plan.Nodes),
		Nodes:           datatypes.JSON(nodes),
		Objective:       plan.Objective,
		TotalDistanceKm: plan.TotalDistanceKm,
		Diagnostics:     datatypes.JSON(diagnostics),
		SolveMs:         plan.SolveDuration.Milliseconds(),
		ErrorMessage:    plan.ErrorMessage,
		Routes:          fromRoutesDomain(plan.ID, plan.Routes),
	}, nil
}

func fromRoutesDomain(planID uuid.UUID, routes []entity.Route) []model.PlanRouteModel {
	models := make([]model.PlanRouteModel, 0, len(routes))
	for _, r := range routes {
		models = append(models, model.PlanRouteModel{
			PlanID:     planID,
			RouteIndex: r.ID,
			Nodes:      datatypes.JSONSlice[int](r.Nodes),
			LengthKm:   r.LengthKm,
			Demand:     r.Demand,
			Origin:     string(r.Origin),
			WellFormed: r.WellFormed,
		})
	}

	return models
}

func toPlanDomain(planM *model.PlanModel) (*entity.Plan, error) {
	plan := &entity.Plan{
		ID:              planM.ID,
		State:           entity.PlanState(planM.State),
		Status:          entity.SolveStatus(planM.Status),
		Backend:         planM.Backend,
		VehicleCount:    planM.VehicleCount,
		VehicleCapacity: planM.VehicleCapacity,
		TimeLimit:       time.Duration(planM.TimeLimitMs) * time.Millisecond,
		Objective:       planM.Objective,
		TotalDistanceKm: planM.TotalDistanceKm,
		SolveDuration:   time.Duration(planM.SolveMs) * time.Millisecond,
		ErrorMessage:    planM.ErrorMessage,
		CreatedAt:       planM.CreatedAt,
		UpdatedAt:       planM.UpdatedAt,
	}

	if len(planM.Nodes) > 0 {
		if err := json.Unmarshal(planM.Nodes, &plan.Nodes); err != nil {
			return nil, errors.Wrapf(err, "failed to decode nodes of plan %s", planM.ID)
		}
	}
	if len(planM.Diagnostics) > 0 {
		if err := json.Unmarshal(planM.Diagnostics, &plan.Diagnostics); err != nil {
			return nil, errors.Wrapf(err, "failed to decode diagnostics of plan %s", planM.ID)
		}
	}

	plan.Routes = make([]entity.Route, 0, len(planM.Routes))
	for _, r := range planM.Routes {
		plan.Routes = append(plan.Routes, entity.Route{
			ID:         r.RouteIndex,
			Nodes:      []int(r.Nodes),
			LengthKm:   r.LengthKm,
			Demand:     r.Demand,
			Origin:     entity.RouteOrigin(r.Origin),
			WellFormed: r.WellFormed,
		})
	}

	return plan, nil
}
