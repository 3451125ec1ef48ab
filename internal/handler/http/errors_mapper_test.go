package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{fmt.Errorf("%w: malformed encryption salt", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
		{fmt.Errorf("%w: 2", service.ErrUnsupportedKeyVersion), http.StatusBadRequest, app.MsgUnsupportedKeyVersion},
		{service.ErrNotCiphertext, http.StatusBadRequest, app.MsgNotCiphertext},
		{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists), http.StatusConflict, app.MsgLoginAlreadyExists},
		{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgAccountNotFound},
		{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
