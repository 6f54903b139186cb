package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] the command-line client
// runtime needs: where the server lives and how patient to be with it.
type ClientConfig struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
	// RetryCount is how many times a failed request is retried.
	RetryCount int
	// LogLevel is the minimum emitted log level.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		RetryCount:     cfg.Client.RetryCount,
		LogLevel:       cfg.Log.Level,
	}

	return clientCfg, clientCfg.validate()
}
