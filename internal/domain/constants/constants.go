// Package constants holds shared identifiers used across layers.
package constants

// Pub/Sub provider selectors.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvDevelop marks a local development deployment.
const EnvDevelop = "develop"

// ProviderStrava is the activity provider identifier Gravity ships with.
const ProviderStrava = "strava"

// Report statuses.
const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)
