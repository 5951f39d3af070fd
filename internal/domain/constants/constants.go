// Package constants holds identifiers shared by configuration and wiring.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// DefaultCartKey is the storage key of the persisted cart slot.
	DefaultCartKey = "cart"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cart snapshot backends.
const (
	PersistenceBackendBlob     = "blob"
	PersistenceBackendPostgres = "postgres"
	PersistenceBackendSQLite   = "sqlite"
)
