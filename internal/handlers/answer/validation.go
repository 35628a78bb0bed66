// internal/handlers/answer/validation.go
package answer

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "plantscape-service/internal/common/errors"
	"plantscape-service/internal/models"
)

// requestSchema validates the /answer body shape before any decoding work.
const requestSchema = `{
	"type": "object",
	"required": ["image", "location"],
	"properties": {
		"image": {"type": "string", "minLength": 1},
		"location": {
			"type": "array",
			"items": {"type": "number"},
			"minItems": 2,
			"maxItems": 3
		}
	}
}`

var compiledRequestSchema = gojsonschema.NewStringLoader(requestSchema)

// ValidateBody checks the raw JSON body against the request schema.
func ValidateBody(body []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(compiledRequestSchema, documentLoader)
	if err != nil {
		return apperrors.NewInvalidInputError("request body is not valid JSON")
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apperrors.NewInvalidInputError(strings.Join(errs, "; "))
	}

	return nil
}

// ParseLocation converts the coordinate array into a Location,
// defaulting altitude to 0 for two-element input.
func ParseLocation(coords []float64) (models.Location, error) {
	if len(coords) < 2 {
		return models.Location{}, apperrors.NewInvalidInputError("location must contain at least latitude and longitude")
	}
	loc := models.Location{
		Latitude:  coords[0],
		Longitude: coords[1],
	}
	if len(coords) > 2 {
		loc.Altitude = coords[2]
	}
	return loc, nil
}

// PrepareImage decodes the base64 payload into raw bytes and detects
// its MIME type. The data URL prefix browsers add is stripped first.
func PrepareImage(imageData string, maxBytes int64) ([]byte, string, error) {
	if strings.TrimSpace(imageData) == "" {
		return nil, "", apperrors.NewImageProcessingError("empty image data")
	}

	if strings.HasPrefix(imageData, "data:image") {
		idx := strings.Index(imageData, ",")
		if idx < 0 {
			return nil, "", apperrors.NewImageProcessingError("malformed data URL format")
		}
		imageData = imageData[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, "", apperrors.NewImageProcessingError("invalid base64 encoding: " + err.Error())
	}

	if int64(len(raw)) > maxBytes {
		return nil, "", apperrors.NewImageProcessingError("image file too large (max 10MB)")
	}

	mimeType := http.DetectContentType(raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", apperrors.NewImageProcessingError("invalid or corrupted image format")
	}

	return raw, mimeType, nil
}
