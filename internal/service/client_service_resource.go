package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
)

type clientResourceService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// Do implements [ClientResourceService].
func (r *clientResourceService) Do(ctx context.Context, method, path string, body, result any) error {
	if err := r.adapter.Do(ctx, method, path, body, result); err != nil {
		r.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("resource call failed")
		return fmt.Errorf("%s %s: %w", method, path, mapAdapterError(err))
	}
	return nil
}
