package config

import (
	"fmt"
	"time"
)

// ServerConfig is the key blob server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage DB
	Server  Server
}

// ServerApp holds token and hashing settings of the server.
type ServerApp struct {
	PasswordHashKey string
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	Version         string
}

// GetServerConfig builds and validates the server configuration view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig projects cfg onto the server view.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			PasswordHashKey: cfg.App.PasswordHashKey,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   cfg.App.TokenDuration,
			Version:         cfg.App.Version,
		},
		Storage: cfg.Storage.DB,
		Server:  cfg.Server,
	}

	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return serverCfg
}
