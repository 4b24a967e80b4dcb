package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fleetplan/config"
	deliverycontext "fleetplan/internal/delivery/context"
	"fleetplan/internal/domain/constants"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/infra/pubsub"
	"fleetplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Google attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler solves plans delivered by Pub/Sub push subscriptions
type PushHandler struct {
	verifyPushAuth bool
	verifier       TokenVerifier
	logger         *slog.Logger
	planningUC     usecase.PlanningUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PlanningUC usecase.PlanningUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifier:       idtoken.Validate,
		logger:         params.Logger,
		planningUC:     params.PlanningUC,
	}
}

// HandlePush solves the plan named by a push message.
//
// Pub/Sub redelivers on any non-2xx answer, so only transient failures get a
// 503. Malformed messages and plans that failed for good are acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("[Worker] Failed to read push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, msg, err := pubsub.DecodePushMessage(body)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	planID, err := uuid.Parse(event.PlanID)
	if err != nil {
		h.logger.Error("[Worker] Invalid plan id, dropping message",
			slog.String("plan_id", event.PlanID),
			slog.String("message_id", msg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing plan",
		slog.String("plan_id", event.PlanID),
		slog.String("message_id", msg.Message.MessageID),
	)

	plan, err := h.planningUC.ProcessPlan(ctx, planID)
	if err != nil {
		retryable := isRetryable(ctx, err)
		reqLogger.Error("[Worker] Failed to process plan",
			slog.String("plan_id", event.PlanID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Plan processed",
		slog.String("plan_id", event.PlanID),
		slog.String("state", plan.State.String()),
		slog.String("status", plan.Status.String()),
	)

	return c.NoContent(http.StatusOK)
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// The plan stays pending when its result could not be saved.
	if errors.Is(err, domainerrors.ErrTransactionFailed) {
		return true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() == http.StatusServiceUnavailable
	}

	// Storage errors without a domain code are assumed transient.
	return !errors.Is(err, domainerrors.ErrPlanNotFound)
}

// verifyPubSubToken verifies the JWT Google Pub/Sub attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.verifier(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
