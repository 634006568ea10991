package ports

// ConfigStore reads and writes the persisted pakt configuration. Values are
// resolved fresh per invocation and never cached across commands.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigStore interface {
	// GetString returns the string value for a dotted key, and whether it is set.
	GetString(key string) (string, bool)

	// GetInt returns the integer value for a dotted key, and whether it is set.
	GetInt(key string) (int64, bool)

	// SaveRegistryLogin persists the auth token (and the configured index, if
	// any) under the registry table of the global configuration scope.
	SaveRegistryLogin(token string) error
}
