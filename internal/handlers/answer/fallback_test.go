// internal/handlers/answer/fallback_test.go
package answer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "plantscape-service/internal/common/errors"
)

func TestDegradedResponseLadder(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantPlants int
	}{
		{"auth", apperrors.NewAuthError("x"), http.StatusUnauthorized, 0},
		{"quota", apperrors.NewQuotaError("x"), http.StatusTooManyRequests, 3},
		{"network", apperrors.NewNetworkError(errors.New("x")), http.StatusServiceUnavailable, 3},
		{"malformed", apperrors.NewMalformedError("x"), http.StatusInternalServerError, 3},
		{"image", apperrors.NewImageProcessingError("x"), http.StatusBadRequest, 0},
		{"invalid input", apperrors.NewInvalidInputError("x"), http.StatusBadRequest, 0},
		{"plain error", errors.New("unclassified"), http.StatusInternalServerError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, rec := DegradedResponse(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, rec)
			assert.Len(t, rec.Plants, tt.wantPlants)
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.Error)

			// Canned plants never claim a superimposed image
			for _, p := range rec.Plants {
				assert.Empty(t, p.SuperimposedImage)
				assert.InDelta(t, 0.7, p.PlacementConfidence, 0.2)
			}
		})
	}
}
