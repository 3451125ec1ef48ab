package config

import (
	"fmt"
	"time"
)

const (
	defaultServiceName           = "go-zk-vault"
	defaultUnreadablePlaceholder = "[unable to decrypt]"
	defaultRequestTimeout        = 30 * time.Second
)

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Storage     ClientStorage
	SecureStore SecureStore
	Interceptor Interceptor
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version string
}

// ClientAdapter holds network settings of the client transport.
type ClientAdapter struct {
	// HTTPAddress is the key blob server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the local profile cache settings.
type ClientStorage struct {
	DSN string
}

// GetClientConfig builds and validates the client configuration view.
// Missing optional values get their defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects cfg onto the client view and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage:     ClientStorage{DSN: cfg.Storage.Local.DSN},
		SecureStore: cfg.SecureStore,
		Interceptor: cfg.Interceptor,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.SecureStore.ServiceName == "" {
		clientCfg.SecureStore.ServiceName = defaultServiceName
	}
	if clientCfg.Interceptor.UnreadablePlaceholder == "" {
		clientCfg.Interceptor.UnreadablePlaceholder = defaultUnreadablePlaceholder
	}

	return clientCfg
}
