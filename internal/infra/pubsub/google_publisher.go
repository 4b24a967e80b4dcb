package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fleetplan/internal/domain/constants"
	"fleetplan/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishPlanRequested publishes a plan id to the solve topic and waits for
// the server acknowledgement
func (p *googlePubSubPublisher) PublishPlanRequested(ctx context.Context, event *service.PlanRequestedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}

	p.logger.Info("[GooglePubSub] Publishing plan",
		slog.String("plan_id", event.PlanID),
	)

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish plan %s", event.PlanID)
	}

	p.logger.Info("[GooglePubSub] Plan published",
		slog.String("plan_id", event.PlanID),
		slog.String("server_id", serverID),
	)

	return nil
}

func eventAttributes(event *service.PlanRequestedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributePlanID: event.PlanID,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
