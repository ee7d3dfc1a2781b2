// Package constants defines shared provider identifiers used by config-driven
// infrastructure selection.
package constants

// Identity provider types.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
