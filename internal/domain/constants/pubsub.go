// Package constants contains domain-wide constant values.
package constants

// Pub/Sub providers accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
