// Package errors provides the standardized error taxonomy shared by the API
// handlers and the external model client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Error Kinds
// ==========================

// Kind classifies a failure along the boundary to the external model.
type Kind string

const (
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindImageProcessing Kind = "IMAGE_PROCESSING_FAILED"
	KindAuth            Kind = "AUTH_FAILED"
	KindQuota           Kind = "QUOTA_EXCEEDED"
	KindNetwork         Kind = "NETWORK_UNAVAILABLE"
	KindMalformed       Kind = "MALFORMED_RESPONSE"
)

// ModelError is a structured failure from the request pipeline. Every error
// that reaches a handler boundary is one of these; nothing else propagates to
// the caller.
type ModelError struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("ModelError[%s]: %s", e.Kind, e.Message)
}

// ==========================
// 2. Constructors
// ==========================

// NewInvalidInputError creates a non-retryable request validation error.
func NewInvalidInputError(details string) *ModelError {
	return &ModelError{
		Kind:      KindInvalidInput,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewImageProcessingError creates a non-retryable image error.
func NewImageProcessingError(details string) *ModelError {
	return &ModelError{
		Kind:      KindImageProcessing,
		Message:   "Image could not be processed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthError creates a non-retryable model authentication error.
func NewAuthError(details string) *ModelError {
	return &ModelError{
		Kind:      KindAuth,
		Message:   "Model authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuotaError creates a quota / rate-limit error. Retrying immediately will
// not help, so it is marked non-retryable for the in-request retry loop.
func NewQuotaError(details string) *ModelError {
	return &ModelError{
		Kind:      KindQuota,
		Message:   "Model quota exceeded",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkError creates a retryable network error. Timeouts are classified
// here as well.
func NewNetworkError(err error) *ModelError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &ModelError{
		Kind:      KindNetwork,
		Message:   "Model endpoint unreachable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedError creates a non-retryable response parsing error.
func NewMalformedError(details string) *ModelError {
	return &ModelError{
		Kind:      KindMalformed,
		Message:   "Model returned an unparseable response",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps an error kind to the response status class the mobile
// client expects.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindImageProcessing:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindQuota:
		return http.StatusTooManyRequests
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 4. Utilities
// ==========================

// AsModelError unwraps err into a *ModelError. Unknown errors are coerced to
// KindMalformed so the handler boundary always has a kind to map.
func AsModelError(err error) *ModelError {
	var me *ModelError
	if errors.As(err, &me) {
		return me
	}
	return NewMalformedError(err.Error())
}

// IsKind reports whether err is a ModelError of the given kind.
func IsKind(err error, kind Kind) bool {
	var me *ModelError
	return errors.As(err, &me) && me.Kind == kind
}
