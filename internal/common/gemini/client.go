// internal/common/gemini/client.go
package gemini

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"google.golang.org/genai"

	"plantscape-service/internal/common/config"
	apperrors "plantscape-service/internal/common/errors"
	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/models"
)

// ==========================================
// CLIENT
// ==========================================

// contentGenerator is the slice of the genai SDK the client depends on.
// Tests inject fakes; production wires client.Models.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API for location analysis, plant
// recommendation with superimposed images, and community narration.
type Client struct {
	gen        contentGenerator
	model      string
	imageModel string
	timeout    time.Duration
	maxRetries int
	maxPlants  int
	logger     logger.Logger
}

// New authenticates against the Gemini API and returns a ready client.
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.NewAuthError("GEMINI_API_KEY is required")
	}

	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAuthError("failed to initialize Gemini client: " + err.Error())
	}

	log.Info("authenticated with Gemini API", map[string]interface{}{
		"model":       cfg.Model,
		"image_model": cfg.ImageModel,
	})

	return &Client{
		gen:        genClient.Models,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		timeout:    config.GetDuration(cfg.Timeout, 90*time.Second),
		maxRetries: cfg.MaxRetries,
		maxPlants:  cfg.MaxPlants,
		logger:     log,
	}, nil
}

// NewWithGenerator builds a client around an existing generator.
// Used by tests and by callers that manage the SDK client themselves.
func NewWithGenerator(gen contentGenerator, cfg config.GeminiConfig, log logger.Logger) *Client {
	return &Client{
		gen:        gen,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		timeout:    config.GetDuration(cfg.Timeout, 90*time.Second),
		maxRetries: cfg.MaxRetries,
		maxPlants:  cfg.MaxPlants,
		logger:     log,
	}
}

// ==========================================
// OPERATIONS
// ==========================================

// AnalyzeLocation describes how suitable the photographed spot is for
// plant growth. Parse failures degrade to a generic description rather
// than an error.
func (c *Client) AnalyzeLocation(ctx context.Context, image []byte, mimeType string, loc models.Location) (*models.LocationAnalysis, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(buildLocationAnalysisPrompt(loc)),
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
	}

	resp, err := c.generate(ctx, c.model, parts)
	if err != nil {
		return nil, err
	}

	return parseLocationAnalysis(resp), nil
}

// RecommendPlants runs the comprehensive analysis: location
// description plus up to maxPlants recommendations, each with a
// superimposed image showing the plant placed in the original photo.
func (c *Client) RecommendPlants(ctx context.Context, image []byte, mimeType string, loc models.Location) (*models.Recommendation, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(buildComprehensivePrompt(loc, c.maxPlants)),
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
	}

	resp, err := c.generate(ctx, c.imageModel, parts)
	if err != nil {
		return nil, err
	}

	rec := parseRecommendation(resp)
	c.logger.Info("processed plant recommendation response", map[string]interface{}{
		"plant_count": len(rec.Plants),
	})
	return rec, nil
}

// NarrateMatches asks the model to describe plant-sharing groups and
// the benefits members could exchange. Callers fall back to local
// descriptions when this fails.
func (c *Client) NarrateMatches(ctx context.Context, groups []models.Match) ([]models.Match, error) {
	if len(groups) == 0 {
		return groups, nil
	}

	parts := []*genai.Part{
		genai.NewPartFromText(buildNarrationPrompt(groups)),
	}

	resp, err := c.generate(ctx, c.model, parts)
	if err != nil {
		return nil, err
	}

	return parseNarration(resp, groups)
}

// ==========================================
// TRANSPORT
// ==========================================

// generate issues the API call with a per-call timeout and a single
// retry for retryable failures.
func (c *Client) generate(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	var lastErr error
	attempts := c.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.gen.GenerateContent(callCtx, model, contents, &genai.GenerateContentConfig{})
		cancel()

		if err == nil {
			return resp, nil
		}

		modelErr := classifyError(err)
		if !modelErr.Retryable || attempt == attempts-1 {
			return nil, modelErr
		}

		c.logger.Warn("retrying Gemini call after retryable error", map[string]interface{}{
			"attempt": attempt + 1,
			"model":   model,
			"error":   err.Error(),
		})
		lastErr = modelErr
	}

	return nil, lastErr
}

// ==========================================
// ERROR CLASSIFICATION
// ==========================================

// classifyError maps SDK and transport failures onto the error
// taxonomy the HTTP layer translates to status codes.
func classifyError(err error) *apperrors.ModelError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewNetworkError(err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return apperrors.NewAuthError(apiErr.Message)
		case apiErr.Code == 429:
			return apperrors.NewQuotaError(apiErr.Message)
		case apiErr.Code == 400 && containsAny(strings.ToLower(apiErr.Message), "image", "decode", "corrupt", "invalid format"):
			return apperrors.NewImageProcessingError(apiErr.Message)
		case apiErr.Code >= 500:
			return apperrors.NewNetworkError(err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.NewNetworkError(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "auth", "credential", "api key", "permission"):
		return apperrors.NewAuthError(err.Error())
	case containsAny(msg, "quota", "rate limit", "too many requests", "limit exceeded"):
		return apperrors.NewQuotaError(err.Error())
	case containsAny(msg, "network", "connection", "timeout", "unreachable", "dns"):
		return apperrors.NewNetworkError(err)
	case containsAny(msg, "json", "parse", "format", "decode", "malformed"):
		return apperrors.NewMalformedError(err.Error())
	case containsAny(msg, "image", "corrupt"):
		return apperrors.NewImageProcessingError(err.Error())
	}

	// Unrecognized failures are treated as malformed model output so
	// they surface as internal errors instead of being retried.
	return apperrors.NewMalformedError(err.Error())
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
