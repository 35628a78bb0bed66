// internal/handlers/answer/handler.go
package answer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "plantscape-service/internal/common/errors"
	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/common/observability"
	"plantscape-service/internal/models"
)

// recommender is the slice of the Gemini client this handler needs.
type recommender interface {
	RecommendPlants(ctx context.Context, image []byte, mimeType string, loc models.Location) (*models.Recommendation, error)
}

type Handler struct {
	rec    recommender
	config *Config
	logger logger.Logger
	obs    *observability.Observability
}

func NewHandler(rec recommender, cfg *Config, log logger.Logger, obs *observability.Observability) *Handler {
	return &Handler{
		rec:    rec,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"handler": "answer"}),
		obs:    obs,
	}
}

// Handle implements POST /answer: validate the body, decode the image,
// call the model, and serve either the recommendation or a degraded
// response that keeps the envelope shape the client expects.
func (h *Handler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, models.Recommendation{
			Description: "Invalid request data.",
			Plants:      []models.Plant{},
			Error:       "No data provided in request.",
		})
		return
	}

	if err := ValidateBody(body); err != nil {
		h.logger.Warn("request validation failed", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusBadRequest, models.Recommendation{
			Description: "Missing required fields.",
			Plants:      []models.Plant{},
			Error:       "Image and location data are required.",
		})
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.Recommendation{
			Description: "Invalid request data.",
			Plants:      []models.Plant{},
			Error:       "No data provided in request.",
		})
		return
	}

	loc, err := ParseLocation(req.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Recommendation{
			Description: "Invalid location format.",
			Plants:      []models.Plant{},
			Error:       "Location must be a list with at least latitude and longitude.",
		})
		return
	}

	image, mimeType, err := PrepareImage(req.Image, h.config.MaxImageBytes)
	if err != nil {
		h.logger.Warn("image preparation failed", map[string]interface{}{"error": err.Error()})
		status, rec := DegradedResponse(err)
		c.JSON(status, rec)
		return
	}

	h.logger.Info("processing image analysis", map[string]interface{}{
		"latitude":    loc.Latitude,
		"longitude":   loc.Longitude,
		"altitude":    loc.Altitude,
		"image_bytes": len(image),
		"mime_type":   mimeType,
	})

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	rec, err := h.rec.RecommendPlants(ctx, image, mimeType, loc)
	if err != nil {
		modelErr := apperrors.AsModelError(err)
		h.logger.Error("plant recommendation failed", map[string]interface{}{
			"kind":      string(modelErr.Kind),
			"retryable": modelErr.Retryable,
			"error":     modelErr.Message,
		})
		if h.obs != nil {
			h.obs.RecordModelCall(c.Request.Context(), string(modelErr.Kind))
		}

		status, degradedRec := DegradedResponse(err)
		c.JSON(status, degradedRec)
		return
	}

	if h.obs != nil {
		h.obs.RecordModelCall(c.Request.Context(), "success")
	}
	h.logger.Info("plant recommendation succeeded", map[string]interface{}{
		"plant_count": len(rec.Plants),
	})

	c.JSON(http.StatusOK, rec)
}
