package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/validators"
)

var keyMaterialValidator = validators.NewKeyMaterialValidator()

// validate checks obj and reports failures as service errors, so handlers
// map them without knowing about the validators package.
func validate(ctx context.Context, obj any, fields ...string) error {
	err := keyMaterialValidator.Validate(ctx, obj, fields...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrVersionNotSpecified):
		return fmt.Errorf("%w: %w", ErrVersionIsNotSpecified, err)
	case errors.Is(err, validators.ErrUnsupportedVersion):
		return fmt.Errorf("%w: %w", ErrUnsupportedKeyVersion, err)
	case errors.Is(err, validators.ErrNotCiphertext):
		return fmt.Errorf("%w: %w", ErrNotCiphertext, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
