package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleetplan/config"
	deliverycontext "fleetplan/internal/delivery/context"
	"fleetplan/internal/domain/constants"
	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	mockUsecase "fleetplan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func pushBody(t *testing.T, payload string, attributes map[string]string) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString([]byte(payload)),
			"attributes": attributes,
			"messageId":  "m-1",
		},
		"subscription": "projects/p/subscriptions/plans-push",
	})
	require.NoError(t, err)

	return string(body)
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockPlanningUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	planningUC := mockUsecase.NewMockPlanningUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PlanningUC: planningUC,
	})

	return h, planningUC
}

func servePush(h *PushHandler, body string, header ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if len(header) == 2 {
		req.Header.Set(header[0], header[1])
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_ProcessesPlan(t *testing.T) {
	h, planningUC := newTestPushHandler(t, nil)
	planID := uuid.New()

	planningUC.EXPECT().ProcessPlan(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) == "req-9"
	}), planID).Return(&entity.Plan{ID: planID, State: entity.PlanStateSolved, Status: entity.SolveStatusOptimal}, nil)

	rec := servePush(h, pushBody(t, `{"plan_id":"`+planID.String()+`","request_id":"req-9"}`, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_PlanIDFromAttributes(t *testing.T) {
	h, planningUC := newTestPushHandler(t, nil)
	planID := uuid.New()

	planningUC.EXPECT().ProcessPlan(mock.Anything, planID).Return(&entity.Plan{ID: planID}, nil)

	rec := servePush(h, pushBody(t, `{}`, map[string]string{constants.AttributePlanID: planID.String()}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "solver unavailable is retried", err: domainerrors.ErrSolverUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "deadline is retried", err: errors.Wrap(context.DeadlineExceeded, "solve"), wantCode: http.StatusServiceUnavailable},
		{name: "storage error is retried", err: errors.New("connection reset"), wantCode: http.StatusServiceUnavailable},
		{name: "failed save is retried", err: domainerrors.ErrTransactionFailed.WrapMessage("connection reset"), wantCode: http.StatusServiceUnavailable},
		{name: "infeasible input is acked", err: domainerrors.ErrDemandExceedsCapacity, wantCode: http.StatusOK},
		{name: "missing plan is acked", err: domainerrors.ErrPlanNotFound, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, planningUC := newTestPushHandler(t, nil)
			planID := uuid.New()
			planningUC.EXPECT().ProcessPlan(mock.Anything, planID).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, `{"plan_id":"`+planID.String()+`"}`, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_BadMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, pushBody(t, `{}`, nil)).Code)
	assert.Equal(t, http.StatusOK, servePush(h, pushBody(t, `{"plan_id":"nope"}`, nil)).Code)
}

func TestPushHandler_VerifiesPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, planningUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifier = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "signed" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	planID := uuid.New()
	body := pushBody(t, `{"plan_id":"`+planID.String()+`"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, servePush(h, body).Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, echo.HeaderAuthorization, "Bearer forged").Code)

	planningUC.EXPECT().ProcessPlan(mock.Anything, planID).Return(&entity.Plan{ID: planID}, nil)
	assert.Equal(t, http.StatusOK, servePush(h, body, echo.HeaderAuthorization, "Bearer signed").Code)
}

func TestPushHandler_SkipsAuthInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
