package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fleetplan/internal/domain/constants"
	"fleetplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/plan-solve-sub"

// localHTTPPublisher posts events straight to the worker's push endpoint,
// standing in for a Pub/Sub push subscription during development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub posts to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishPlanRequested(ctx context.Context, event *service.PlanRequestedEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing plan",
		slog.String("endpoint", p.endpoint),
		slog.String("plan_id", event.PlanID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(constants.HeaderRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Plan published",
		slog.String("plan_id", event.PlanID),
	)

	return nil
}

// Close is a no-op, the HTTP client holds no resources
func (p *localHTTPPublisher) Close() error {
	return nil
}

// DecodePushMessage unwraps a push envelope into the plan event it carries
func DecodePushMessage(body []byte) (*service.PlanRequestedEvent, *PushMessage, error) {
	var msg PushMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "decode push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.PlanRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "decode plan event")
	}
	if event.PlanID == "" {
		event.PlanID = msg.Message.Attributes[constants.AttributePlanID]
	}
	if event.RequestID == "" {
		event.RequestID = msg.Message.Attributes[constants.AttributeRequestID]
	}
	if event.PlanID == "" {
		return nil, nil, errors.New("plan_id missing from message")
	}

	return &event, &msg, nil
}
