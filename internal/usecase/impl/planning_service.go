package impl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"path"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/repository"
	"fleetplan/internal/domain/service"
	"fleetplan/internal/infra/export"
	"fleetplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// PlanningServiceParams holds dependencies for the planning service, injected by Fx
type PlanningServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Planner   usecase.RoutePlanner
	PlanRepo  repository.PlanRepository
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Artifacts service.ArtifactStore
	QRCode    service.QRCodeService
}

type planningService struct {
	logger    *slog.Logger
	planner   usecase.RoutePlanner
	planRepo  repository.PlanRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	artifacts service.ArtifactStore
	qrcode    service.QRCodeService
}

// NewPlanningService creates a new planning service instance
func NewPlanningService(params PlanningServiceParams) usecase.PlanningUsecase {
	return &planningService{
		logger:    params.Logger,
		planner:   params.Planner,
		planRepo:  params.PlanRepo,
		txManager: params.TxManager,
		publisher: params.Publisher,
		artifacts: params.Artifacts,
		qrcode:    params.QRCode,
	}
}

// Solve validates the request, runs the pipeline and persists the plan.
// Invalid requests are rejected without creating a plan; pipeline failures
// after validation are stored on a failed plan.
func (s *planningService) Solve(ctx context.Context, req *usecase.SolveRequest) (*entity.Plan, error) {
	prepared, err := s.planner.Prepare(req)
	if err != nil {
		return nil, err
	}

	plan := prepared.Problem()
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Solving plan synchronously", "planID", plan.ID, "nodes", len(plan.Nodes))

	return s.solvePlan(ctx, plan, prepared, false)
}

// Submit stores a pending plan and hands it to the solve worker
func (s *planningService) Submit(ctx context.Context, req *usecase.SolveRequest) (*entity.Plan, error) {
	prepared, err := s.planner.Prepare(req)
	if err != nil {
		return nil, err
	}

	plan := prepared.Problem()
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	event := &service.PlanRequestedEvent{
		RequestID: prepared.RequestID,
		PlanID:    plan.ID.String(),
	}
	if err := s.publisher.PublishPlanRequested(ctx, event); err != nil {
		s.logger.Error("failed to publish plan", "planID", plan.ID, "error", err)
		if markErr := s.planRepo.MarkFailed(ctx, plan.ID, "failed to queue plan"); markErr != nil {
			s.logger.Error("failed to mark plan failed", "planID", plan.ID, "error", markErr)
		}

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to queue plan")
	}

	s.logger.Info("Plan queued", "planID", plan.ID, "nodes", len(plan.Nodes))

	return plan, nil
}

// ProcessPlan solves a pending plan. Plans already solved or failed are
// returned unchanged so redelivered messages are harmless.
func (s *planningService) ProcessPlan(ctx context.Context, planID uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.State != entity.PlanStatePending {
		s.logger.Debug("Plan already processed, skipping", "planID", planID, "state", plan.State)

		return plan, nil
	}

	req := &usecase.SolveRequest{
		Nodes:           plan.Nodes,
		VehicleCount:    plan.VehicleCount,
		VehicleCapacity: plan.VehicleCapacity,
		TimeLimit:       plan.TimeLimit,
	}

	return s.solvePlan(ctx, plan, req, true)
}

// solvePlan runs the pipeline for a stored plan. When redeliverable is set,
// transient failures and failed saves leave the plan pending so a retry can
// pick it up; otherwise the plan is marked failed.
func (s *planningService) solvePlan(ctx context.Context, plan *entity.Plan, req *usecase.SolveRequest, redeliverable bool) (*entity.Plan, error) {
	sol, err := s.planner.Plan(ctx, req)
	if err != nil {
		if redeliverable && isRetryable(ctx, err) {
			return nil, err
		}

		s.logger.Warn("Plan failed", "planID", plan.ID, "error", err)
		if markErr := s.planRepo.MarkFailed(context.WithoutCancel(ctx), plan.ID, err.Error()); markErr != nil {
			s.logger.Error("failed to mark plan failed", "planID", plan.ID, "error", markErr)
		}

		return nil, err
	}

	plan.ApplySolution(sol)
	if err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewPlanRepository().SaveResult(ctx, plan)
	}); err != nil {
		s.logger.Error("failed to save plan result", "planID", plan.ID, "error", err)
		if !redeliverable {
			if markErr := s.planRepo.MarkFailed(context.WithoutCancel(ctx), plan.ID, "failed to save plan result"); markErr != nil {
				s.logger.Error("failed to mark plan failed", "planID", plan.ID, "error", markErr)
			}
		}

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	s.storeArtifacts(ctx, plan)

	return plan, nil
}

// storeArtifacts uploads the route table and map. Upload failures do not fail
// the plan, the artifacts can always be rendered again from storage.
func (s *planningService) storeArtifacts(ctx context.Context, plan *entity.Plan) {
	if s.artifacts == nil || len(plan.Routes) == 0 {
		return
	}

	csvData, err := renderCSV(plan)
	if err == nil {
		_, err = s.artifacts.Put(ctx, path.Join(plan.ID.String(), "routes.csv"), export.ContentTypeCSV, csvData)
	}
	if err != nil {
		s.logger.Warn("failed to store route table", "planID", plan.ID, "error", err)
	}

	geoData, err := export.RoutesGeoJSON(plan.Nodes, plan.Routes)
	if err == nil {
		_, err = s.artifacts.Put(ctx, path.Join(plan.ID.String(), "routes.geojson"), export.ContentTypeGeoJSON, geoData)
	}
	if err != nil {
		s.logger.Warn("failed to store route map", "planID", plan.ID, "error", err)
	}
}

// GetPlan retrieves a plan with its routes
func (s *planningService) GetPlan(ctx context.Context, planID uuid.UUID) (*entity.Plan, error) {
	return s.planRepo.FindByID(ctx, planID)
}

// ListPlans retrieves plan headers, newest first
func (s *planningService) ListPlans(ctx context.Context, limit, offset int) ([]*entity.Plan, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.planRepo.List(ctx, limit, offset)
}

// ExportRoutesCSV renders the route table of a solved plan
func (s *planningService) ExportRoutesCSV(ctx context.Context, planID uuid.UUID) ([]byte, error) {
	plan, err := s.solvedPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	data, err := renderCSV(plan)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return data, nil
}

// ExportRoutesGeoJSON renders the routes and nodes of a solved plan
func (s *planningService) ExportRoutesGeoJSON(ctx context.Context, planID uuid.UUID) ([]byte, error) {
	plan, err := s.solvedPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	data, err := export.RoutesGeoJSON(plan.Nodes, plan.Routes)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return data, nil
}

// RouteQRCode renders the QR code of one route
func (s *planningService) RouteQRCode(ctx context.Context, planID uuid.UUID, routeID int) ([]byte, error) {
	plan, err := s.solvedPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if _, ok := plan.Route(routeID); !ok {
		return nil, errors.Wrapf(domainerrors.ErrRouteNotFound, "route %d", routeID)
	}

	png, err := s.qrcode.GenerateRouteQR(planID, routeID)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func (s *planningService) solvedPlan(ctx context.Context, planID uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.State != entity.PlanStateSolved {
		return nil, errors.Wrapf(domainerrors.ErrPlanNotReady, "plan is %s", plan.State)
	}

	return plan, nil
}

func renderCSV(plan *entity.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := export.WriteRoutesCSV(&buf, plan.Routes); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// isRetryable separates transient failures, which the caller may redeliver,
// from input and engine failures that will not change on retry.
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() == http.StatusServiceUnavailable
	}

	return false
}
