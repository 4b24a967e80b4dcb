package pubsub

import (
	"context"
	"log/slog"

	"fleetplan/config"
	"fleetplan/internal/domain/constants"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pendingPublisher is used when no provider is configured. Submitted plans
// are stored but nothing will pick them up until a worker is wired.
type pendingPublisher struct {
	logger *slog.Logger
}

func (p *pendingPublisher) PublishPlanRequested(_ context.Context, event *service.PlanRequestedEvent) error {
	p.logger.Warn("[PlanEvents] No publisher configured, plan stays pending",
		slog.String("plan_id", event.PlanID),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (p *pendingPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the plan event publisher selected by pubsub.provider.
// Providers holding connections are closed when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger.With(slog.String("component", "plan_events"))

	publisher, err := openPlanPublisher(params.Ctx, params.Config.PubSub, logger)
	if err != nil {
		return nil, err
	}
	if _, pending := publisher.(*pendingPublisher); pending {
		return publisher, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing plan event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPlanPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Plan events disabled, async plans will not be solved")

		return &pendingPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Pushing plan events straight to the solve worker",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Publishing plan events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err := NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open plan topic %s", cfg.TopicID)
		}

		return publisher, nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the plan event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
