package impl

import (
	"context"
	"testing"
	"time"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/domain/repository"
	"fleetplan/internal/domain/service"
	mockRepo "fleetplan/internal/mocks/repository"
	mockSvc "fleetplan/internal/mocks/service"
	mockUsecase "fleetplan/internal/mocks/usecase"
	"fleetplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planningMocks struct {
	planner   *mockUsecase.MockRoutePlanner
	planRepo  *mockRepo.MockPlanRepository
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
	artifacts *mockSvc.MockArtifactStore
	qrcode    *mockSvc.MockQRCodeService
}

func createTestPlanningService(t *testing.T) (usecase.PlanningUsecase, *planningMocks) {
	m := &planningMocks{
		planner:   mockUsecase.NewMockRoutePlanner(t),
		planRepo:  mockRepo.NewMockPlanRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		artifacts: mockSvc.NewMockArtifactStore(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
	}

	svc := NewPlanningService(PlanningServiceParams{
		Logger:    discardLogger(),
		Planner:   m.planner,
		PlanRepo:  m.planRepo,
		TxManager: m.txManager,
		Publisher: m.publisher,
		Artifacts: m.artifacts,
		QRCode:    m.qrcode,
	})

	return svc, m
}

func preparedRequest() *usecase.SolveRequest {
	return &usecase.SolveRequest{
		Nodes:           scenarioNodes(),
		VehicleCount:    2,
		VehicleCapacity: 8,
		TimeLimit:       30 * time.Second,
		RequestID:       "req-42",
	}
}

func scenarioSolution() *entity.Solution {
	objective := 23.0

	return &entity.Solution{
		Status:    entity.SolveStatusOptimal,
		Backend:   "cbc",
		Objective: &objective,
		Routes: []entity.Route{
			{ID: 1, Nodes: []int{0, 1, 2, 0}, LengthKm: 11, Demand: 7, Origin: entity.RouteOriginPrimary, WellFormed: true},
			{ID: 2, Nodes: []int{0, 3, 0}, LengthKm: 12, Demand: 5, Origin: entity.RouteOriginPrimary, WellFormed: true},
		},
		TotalDistanceKm: 23,
		SolveDuration:   time.Second,
	}
}

func solvedPlan(id uuid.UUID) *entity.Plan {
	plan := preparedRequest().Problem()
	plan.ID = id
	plan.ApplySolution(scenarioSolution())

	return plan
}

// expectTransaction runs the callback against a factory handing out txRepo.
func expectTransaction(m *planningMocks, txRepo repository.PlanRepository) {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := &mockRepo.MockRepositoryFactory{}
			factory.On("NewPlanRepository").Return(txRepo)

			return fn(factory)
		})
}

func TestPlanningService_Solve_Success(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	req := &usecase.SolveRequest{Nodes: scenarioNodes()}
	txRepo := mockRepo.NewMockPlanRepository(t)

	m.planner.EXPECT().Prepare(req).Return(preparedRequest(), nil)
	m.planRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, plan *entity.Plan) {
			assert.Equal(t, entity.PlanStatePending, plan.State)
			assert.Len(t, plan.Nodes, 4)
			plan.ID = planID
		}).
		Return(nil)
	m.planner.EXPECT().Plan(ctx, preparedRequest()).Return(scenarioSolution(), nil)
	expectTransaction(m, txRepo)
	txRepo.EXPECT().SaveResult(ctx, mock.MatchedBy(func(plan *entity.Plan) bool {
		return plan.ID == planID && plan.State == entity.PlanStateSolved && len(plan.Routes) == 2
	})).Return(nil)
	m.artifacts.EXPECT().Put(ctx, planID.String()+"/routes.csv", "text/csv", mock.Anything).Return("mem://routes.csv", nil)
	m.artifacts.EXPECT().Put(ctx, planID.String()+"/routes.geojson", "application/geo+json", mock.Anything).Return("", errors.New("bucket offline"))

	plan, err := svc.Solve(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, planID, plan.ID)
	assert.Equal(t, entity.PlanStateSolved, plan.State)
	assert.Equal(t, entity.SolveStatusOptimal, plan.Status)
	assert.InDelta(t, 23.0, plan.TotalDistanceKm, tolerance)
}

func TestPlanningService_Solve_InvalidRequestIsNotStored(t *testing.T) {
	svc, m := createTestPlanningService(t)
	req := &usecase.SolveRequest{}

	m.planner.EXPECT().Prepare(req).Return(nil, domainerrors.ErrInvalidNodes)

	_, err := svc.Solve(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidNodes)
}

func TestPlanningService_Solve_PipelineFailureMarksPlan(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	req := &usecase.SolveRequest{Nodes: scenarioNodes()}

	m.planner.EXPECT().Prepare(req).Return(preparedRequest(), nil)
	m.planRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, plan *entity.Plan) { plan.ID = planID }).
		Return(nil)
	m.planner.EXPECT().Plan(ctx, mock.Anything).Return(nil, domainerrors.ErrSolverUnavailable)
	m.planRepo.EXPECT().MarkFailed(mock.Anything, planID, mock.Anything).Return(nil)

	_, err := svc.Solve(ctx, req)
	assert.ErrorIs(t, err, domainerrors.ErrSolverUnavailable)
}

func TestPlanningService_Solve_SaveFailureMarksPlan(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	txRepo := mockRepo.NewMockPlanRepository(t)

	m.planner.EXPECT().Prepare(mock.Anything).Return(preparedRequest(), nil)
	m.planRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, plan *entity.Plan) { plan.ID = planID }).
		Return(nil)
	m.planner.EXPECT().Plan(ctx, mock.Anything).Return(scenarioSolution(), nil)
	expectTransaction(m, txRepo)
	txRepo.EXPECT().SaveResult(ctx, mock.Anything).Return(errors.New("deadlock"))
	m.planRepo.EXPECT().MarkFailed(mock.Anything, planID, "failed to save plan result").Return(nil)

	_, err := svc.Solve(ctx, &usecase.SolveRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestPlanningService_Submit(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planner.EXPECT().Prepare(mock.Anything).Return(preparedRequest(), nil)
	m.planRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, plan *entity.Plan) { plan.ID = planID }).
		Return(nil)
	m.publisher.EXPECT().
		PublishPlanRequested(ctx, &service.PlanRequestedEvent{RequestID: "req-42", PlanID: planID.String()}).
		Return(nil)

	plan, err := svc.Submit(ctx, &usecase.SolveRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatePending, plan.State)
	assert.Equal(t, planID, plan.ID)
}

func TestPlanningService_Submit_PublishFailure(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planner.EXPECT().Prepare(mock.Anything).Return(preparedRequest(), nil)
	m.planRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, plan *entity.Plan) { plan.ID = planID }).
		Return(nil)
	m.publisher.EXPECT().PublishPlanRequested(ctx, mock.Anything).Return(errors.New("topic gone"))
	m.planRepo.EXPECT().MarkFailed(ctx, planID, "failed to queue plan").Return(nil)

	_, err := svc.Submit(ctx, &usecase.SolveRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestPlanningService_ProcessPlan(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	pending := preparedRequest().Problem()
	pending.ID = planID
	txRepo := mockRepo.NewMockPlanRepository(t)

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(pending, nil)
	m.planner.EXPECT().Plan(ctx, mock.MatchedBy(func(req *usecase.SolveRequest) bool {
		return len(req.Nodes) == 4 && req.VehicleCount == 2 && req.TimeLimit == 30*time.Second
	})).Return(scenarioSolution(), nil)
	expectTransaction(m, txRepo)
	txRepo.EXPECT().SaveResult(ctx, mock.Anything).Return(nil)
	m.artifacts.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", nil).Times(2)

	plan, err := svc.ProcessPlan(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStateSolved, plan.State)
	assert.Len(t, plan.Routes, 2)
}

func TestPlanningService_ProcessPlan_AlreadySolved(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(solvedPlan(planID), nil)

	plan, err := svc.ProcessPlan(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStateSolved, plan.State)
}

func TestPlanningService_ProcessPlan_TransientFailureStaysPending(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	pending := preparedRequest().Problem()
	pending.ID = planID

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(pending, nil)
	m.planner.EXPECT().Plan(ctx, mock.Anything).Return(nil, domainerrors.ErrSolverUnavailable)

	_, err := svc.ProcessPlan(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrSolverUnavailable)
}

func TestPlanningService_ProcessPlan_SaveFailureStaysPending(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	pending := preparedRequest().Problem()
	pending.ID = planID
	txRepo := mockRepo.NewMockPlanRepository(t)

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(pending, nil)
	m.planner.EXPECT().Plan(ctx, mock.Anything).Return(scenarioSolution(), nil)
	expectTransaction(m, txRepo)
	txRepo.EXPECT().SaveResult(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.ProcessPlan(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestPlanningService_ProcessPlan_PermanentFailure(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	pending := preparedRequest().Problem()
	pending.ID = planID

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(pending, nil)
	m.planner.EXPECT().Plan(ctx, mock.Anything).Return(nil, domainerrors.ErrDemandExceedsCapacity)
	m.planRepo.EXPECT().MarkFailed(mock.Anything, planID, mock.Anything).Return(nil)

	_, err := svc.ProcessPlan(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrDemandExceedsCapacity)
}

func TestPlanningService_ListPlans_ClampsPaging(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, -5, defaultListLimit, 0},
		{"capped", 1000, 10, maxListLimit, 10},
		{"as given", 5, 15, 5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestPlanningService(t)
			ctx := context.Background()

			m.planRepo.EXPECT().List(ctx, tt.wantLimit, tt.wantOffset).Return([]*entity.Plan{}, nil)

			plans, err := svc.ListPlans(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Empty(t, plans)
		})
	}
}

func TestPlanningService_ExportRoutesCSV(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(solvedPlan(planID), nil)

	data, err := svc.ExportRoutesCSV(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t,
		"route_id,route_nodes,route_length\n1,\"[0, 1, 2, 0]\",11\n2,\"[0, 3, 0]\",12\n",
		string(data))
}

func TestPlanningService_ExportRoutesGeoJSON(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(solvedPlan(planID), nil)

	data, err := svc.ExportRoutesGeoJSON(ctx, planID)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
	assert.Contains(t, string(data), `"LineString"`)
}

func TestPlanningService_ExportPendingPlan(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()
	pending := preparedRequest().Problem()
	pending.ID = planID

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(pending, nil)

	_, err := svc.ExportRoutesCSV(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotReady)
}

func TestPlanningService_RouteQRCode(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(solvedPlan(planID), nil).Times(2)
	m.qrcode.EXPECT().GenerateRouteQR(planID, 2).Return([]byte("png"), nil)

	png, err := svc.RouteQRCode(ctx, planID, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.RouteQRCode(ctx, planID, 7)
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func TestPlanningService_GetPlan_NotFound(t *testing.T) {
	svc, m := createTestPlanningService(t)
	ctx := context.Background()
	planID := uuid.New()

	m.planRepo.EXPECT().FindByID(ctx, planID).Return(nil, domainerrors.ErrPlanNotFound)

	_, err := svc.GetPlan(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}
