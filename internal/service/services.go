package service

import (
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

// Services groups the server business services.
type Services struct {
	AuthService    AuthService
	KeyService     KeyService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		KeyService:     NewKeyService(storages.UserRepository, storages.RecoveryKeyRepository, cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
