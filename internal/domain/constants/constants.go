// Package constants holds configuration values shared between wiring code and infrastructure.
package constants

// Storage drivers selectable with storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverMongo    = "mongo"
)

// Event publisher providers selectable with pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeAccountRegistered is attached to every account registration event.
const EventTypeAccountRegistered = "account.registered"

// EnvLocal marks a developer machine. Push authentication is skipped there.
const EnvLocal = "local"
