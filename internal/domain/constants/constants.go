// Package constants defines shared application-level constants.
package constants

// Environment names used in config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types used in config.PubSub.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Dispatch modes used in config.Dispatch.Mode.
const (
	DispatchModeInline = "inline"
	DispatchModeQueue  = "queue"
)
