package domain

// Settings is the on-disk configuration for the qms CLI.
type Settings struct {
	// APIBaseURL is the base URL of the remote vendor management service.
	APIBaseURL string `toml:"api_base_url"`

	// TimeoutSeconds is the per-request timeout for remote calls.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// DataDir is where the local SQLite database lives.
	// Empty means the default (~/.qms/data).
	DataDir string `toml:"data_dir"`
}

// DefaultSettings returns the configuration used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		APIBaseURL:     "http://localhost:5000/api",
		TimeoutSeconds: 30,
	}
}
