package store

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ProfileRepository caches non-secret account state on the device.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile models.Profile) error
	// GetProfile yields ErrProfileNotFound for an unknown login.
	GetProfile(ctx context.Context, login string) (models.Profile, error)
	// LastProfile returns the most recently logged-in profile.
	LastProfile(ctx context.Context) (models.Profile, error)
	DeleteProfile(ctx context.Context, login string) error
}
