// internal/handlers/answer/validation_test.go
package answer

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "plantscape-service/internal/common/errors"
)

// pngMagic is enough for content sniffing to report image/png.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngBase64() string {
	return base64.StdEncoding.EncodeToString(pngMagic)
}

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"image": "abc", "location": [12.9, 77.5]}`, false},
		{"valid with altitude", `{"image": "abc", "location": [12.9, 77.5, 920.0]}`, false},
		{"missing image", `{"location": [12.9, 77.5]}`, true},
		{"missing location", `{"image": "abc"}`, true},
		{"empty image", `{"image": "", "location": [1, 2]}`, true},
		{"single coordinate", `{"image": "abc", "location": [12.9]}`, true},
		{"four coordinates", `{"image": "abc", "location": [1, 2, 3, 4]}`, true},
		{"string coordinates", `{"image": "abc", "location": ["12.9", "77.5"]}`, true},
		{"not json", `not json`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBody([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLocationDefaultsAltitude(t *testing.T) {
	loc, err := ParseLocation([]float64{12.9, 77.5})
	require.NoError(t, err)
	assert.Equal(t, 12.9, loc.Latitude)
	assert.Equal(t, 77.5, loc.Longitude)
	assert.Equal(t, 0.0, loc.Altitude)

	loc, err = ParseLocation([]float64{12.9, 77.5, 920})
	require.NoError(t, err)
	assert.Equal(t, 920.0, loc.Altitude)
}

func TestPrepareImageAcceptsPlainBase64(t *testing.T) {
	raw, mimeType, err := PrepareImage(pngBase64(), 10*1024*1024)

	require.NoError(t, err)
	assert.Equal(t, pngMagic, raw)
	assert.Equal(t, "image/png", mimeType)
}

func TestPrepareImageStripsDataURLPrefix(t *testing.T) {
	raw, mimeType, err := PrepareImage("data:image/png;base64,"+pngBase64(), 10*1024*1024)

	require.NoError(t, err)
	assert.Equal(t, pngMagic, raw)
	assert.Equal(t, "image/png", mimeType)
}

func TestPrepareImageRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int64
	}{
		{"empty", "", 1024},
		{"malformed data url", "data:image/png;base64", 1024},
		{"invalid base64", "!!!not-base64!!!", 1024},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("plain text payload")), 1024},
		{"too large", pngBase64(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := PrepareImage(tt.input, tt.max)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindImageProcessing))
		})
	}
}

func TestPrepareImageSizeLimitMessage(t *testing.T) {
	big := base64.StdEncoding.EncodeToString(append(pngMagic, make([]byte, 100)...))
	_, _, err := PrepareImage(big, 16)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "too large"))
}
