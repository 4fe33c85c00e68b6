package config

import "time"

// ClientConfig holds the settings blogctl needs to talk to an inkwell
// server. It is populated from environment variables only; per-invocation
// options arrive as blogctl command-line arguments.
type ClientConfig struct {
	// ServerURL is the base URL of the inkwell server
	// (e.g. "http://localhost:8080").
	// Env: INKWELL_SERVER_URL
	ServerURL string `env:"INKWELL_SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: INKWELL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"INKWELL_REQUEST_TIMEOUT"`
}

// GetClientConfig loads and validates the blogctl configuration from the
// environment, applying defaults for anything unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	return cfg, cfg.validate()
}
