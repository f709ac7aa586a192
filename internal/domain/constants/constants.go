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

// Device platforms
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// Notification delivery statuses recorded per device.
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)
