package config

import (
	"fmt"
	"time"
)

// Credential transport strategies accepted by [ClientConfig.Transport].
// Exactly one is used for all authenticated calls of a deployment.
const (
	TransportBearer = "bearer"
	TransportCookie = "cookie"
)

// ClientConfig is the client-specific view assembled from
// [StructuredConfig], with defaults applied for local development.
type ClientConfig struct {
	// ServerURL is the base URL of the bulletin board API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// DBPath is the SQLite file holding persisted session credentials.
	DBPath string
	// Transport is the credential transport strategy, bearer or cookie.
	Transport string
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		DBPath:         cfg.Client.DBPath,
		Transport:      cfg.Client.Transport,
	}

	if clientCfg.ServerURL == "" {
		clientCfg.ServerURL = "http://localhost:8080"
	}
	if clientCfg.RequestTimeout <= 0 {
		clientCfg.RequestTimeout = 15 * time.Second
	}
	if clientCfg.DBPath == "" {
		clientCfg.DBPath = "board-client.db"
	}
	if clientCfg.Transport == "" {
		clientCfg.Transport = TransportBearer
	}

	return clientCfg, clientCfg.validate()
}
