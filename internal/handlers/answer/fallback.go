// internal/handlers/answer/fallback.go
package answer

import (
	"net/http"

	apperrors "plantscape-service/internal/common/errors"
	"plantscape-service/internal/common/gemini"
	"plantscape-service/internal/models"
)

// degraded is the response body served when the model cannot produce
// a recommendation. Kinds where the user can fix the input get empty
// plant lists; transient failures get the canned recommendations so
// the client still has something to show.
type degraded struct {
	description  string
	withFallback bool
	errorMessage string
}

var degradedByKind = map[apperrors.Kind]degraded{
	apperrors.KindAuth: {
		description:  "Unable to authenticate with plant analysis service. Please try again later.",
		errorMessage: "Authentication failed. Please contact support if this persists.",
	},
	apperrors.KindQuota: {
		description:  "Plant analysis service is currently experiencing high demand. Please try again in a few minutes.",
		withFallback: true,
		errorMessage: "Service temporarily unavailable due to high demand. Please try again shortly.",
	},
	apperrors.KindNetwork: {
		description:  "Unable to connect to plant analysis service. Please check your internet connection and try again.",
		withFallback: true,
		errorMessage: "Network connection issue. Please check your internet connection and try again.",
	},
	apperrors.KindMalformed: {
		description:  "Plant analysis completed, but response formatting failed. Basic recommendations provided.",
		withFallback: true,
		errorMessage: "Response processing issue. Basic plant suggestions provided.",
	},
	apperrors.KindImageProcessing: {
		description:  "Unable to process the uploaded image. Please try with a different image.",
		errorMessage: "Image processing failed. Please try uploading a different image.",
	},
	apperrors.KindInvalidInput: {
		description:  "Invalid request data.",
		errorMessage: "Image and location data are required.",
	},
}

// DegradedResponse maps a model error onto the status code and body
// the client receives. Unrecognized kinds degrade to a generic 500
// that still carries the canned recommendations.
func DegradedResponse(err error) (int, *models.Recommendation) {
	modelErr := apperrors.AsModelError(err)

	d, ok := degradedByKind[modelErr.Kind]
	if !ok {
		d = degraded{
			description:  "Plant analysis encountered an issue, but basic recommendations are available.",
			withFallback: true,
			errorMessage: "Analysis service encountered an issue. Basic plant suggestions provided.",
		}
		return http.StatusInternalServerError, buildDegraded(d)
	}

	return apperrors.HTTPStatus(modelErr.Kind), buildDegraded(d)
}

func buildDegraded(d degraded) *models.Recommendation {
	rec := &models.Recommendation{
		Description: d.description,
		Plants:      []models.Plant{},
		Error:       d.errorMessage,
	}
	if d.withFallback {
		rec.Plants = gemini.FallbackPlants()
	}
	return rec
}
