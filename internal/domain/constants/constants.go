// Package constants holds identifiers shared across layers.
package constants

// EnvDevelop names the local environment, where push auth is not verified
const EnvDevelop = "develop"

// Pub/Sub providers accepted by pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attributes set on plan events
const (
	AttributePlanID    = "plan_id"
	AttributeRequestID = "request_id"
)

// HeaderRequestID carries the request id across HTTP hops
const HeaderRequestID = "X-Request-Id"

// Token scopes checked on the plan API
const (
	ScopePlansRead  = "plans:read"
	ScopePlansWrite = "plans:write"
)
