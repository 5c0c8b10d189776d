package driven

// ConfigStore provides application configuration.
// Implementations are safe for concurrent use.
type ConfigStore interface {
	// GetInt retrieves an integer value, or 0 when absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when absent.
	GetBool(key string) bool

	// GetString retrieves a string value, or "" when absent.
	GetString(key string) string

	// SourceOverrides returns per-domain URL overrides.
	SourceOverrides() map[string]string
}
