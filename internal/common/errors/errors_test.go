// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetKindAndRetryable(t *testing.T) {
	assert.Equal(t, KindInvalidInput, NewInvalidInputError("x").Kind)
	assert.Equal(t, KindImageProcessing, NewImageProcessingError("x").Kind)
	assert.Equal(t, KindAuth, NewAuthError("x").Kind)
	assert.Equal(t, KindQuota, NewQuotaError("x").Kind)
	assert.Equal(t, KindMalformed, NewMalformedError("x").Kind)

	netErr := NewNetworkError(fmt.Errorf("conn refused"))
	assert.Equal(t, KindNetwork, netErr.Kind)
	assert.True(t, netErr.Retryable)
	assert.False(t, NewQuotaError("x").Retryable)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindInvalidInput))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindImageProcessing))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindAuth))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(KindQuota))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(KindNetwork))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindMalformed))
}

func TestAsModelErrorCoercesUnknownErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewAuthError("bad key"))
	assert.Equal(t, KindAuth, AsModelError(wrapped).Kind)

	plain := fmt.Errorf("something else")
	assert.Equal(t, KindMalformed, AsModelError(plain).Kind)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewQuotaError("limit"))
	assert.True(t, IsKind(err, KindQuota))
	assert.False(t, IsKind(err, KindAuth))
	assert.False(t, IsKind(fmt.Errorf("plain"), KindQuota))
}
