package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache providers
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)

// Media providers
const (
	MediaProviderHTTP = "http"
	MediaProviderBlob = "blob"
)

// Domain event types
const (
	EventPaymentVerified = "payment.verified"
	EventPaymentRejected = "payment.rejected"
	EventOrderCreated    = "order.created"
)

// Pagination
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
