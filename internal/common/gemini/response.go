// internal/common/gemini/response.go
package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/genai"

	"plantscape-service/internal/models"
)

var errGroupCountMismatch = errors.New("narration group count does not match input groups")

// ==========================================
// RESPONSE EXTRACTION
// ==========================================

// extractText joins the text parts of the first candidate. Models
// often wrap JSON in markdown fences, so those are stripped here.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return stripJSONFences(sb.String())
}

func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// ==========================================
// LOCATION ANALYSIS
// ==========================================

func parseLocationAnalysis(resp *genai.GenerateContentResponse) *models.LocationAnalysis {
	text := extractText(resp)

	var analysis models.LocationAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err == nil && analysis.Description != "" {
		return &analysis
	}

	// Parse failures degrade to a generic description
	return &models.LocationAnalysis{
		Description: "Location analysis completed, but detailed parsing failed. The area appears suitable for plant growth.",
	}
}

// ==========================================
// PLANT RECOMMENDATIONS
// ==========================================

// parseRecommendation validates the comprehensive response and repairs
// what it can. Invalid plants are dropped; if none survive, the canned
// recommendations take their place so the user still gets suggestions.
func parseRecommendation(resp *genai.GenerateContentResponse) *models.Recommendation {
	text := extractText(resp)
	if text == "" {
		return fallbackRecommendation("")
	}

	var rec models.Recommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return fallbackRecommendation(text)
	}

	if rec.Description == "" {
		rec.Description = "Location analysis completed with limited details available."
	}

	validated := make([]models.Plant, 0, len(rec.Plants))
	for i := range rec.Plants {
		p := rec.Plants[i]
		backfillPlant(&p)
		validated = append(validated, p)
	}

	if len(validated) == 0 {
		rec.Plants = FallbackPlants()
	} else {
		rec.Plants = validated
	}

	return &rec
}

// backfillPlant fills missing or blank fields with safe defaults and
// clamps the confidence score into [0, 1].
func backfillPlant(p *models.Plant) {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "Unknown Plant"
	}
	if strings.TrimSpace(p.Description) == "" {
		p.Description = "Plant information not available."
	}
	if strings.TrimSpace(p.CareInstructions) == "" {
		p.CareInstructions = "Follow general plant care guidelines."
	}
	if strings.TrimSpace(p.CareTips) == "" {
		p.CareTips = "Monitor plant health and adjust care as needed."
	}
	p.ClampConfidence()
}

// fallbackRecommendation builds the response used when the model
// output cannot be parsed as JSON.
func fallbackRecommendation(rawText string) *models.Recommendation {
	description := "Location analysis completed, but detailed parsing failed. The area appears suitable for plant growth based on available information."

	if rawText != "" {
		lower := strings.ToLower(rawText)
		if containsAny(lower, "plant", "grow", "suitable", "recommend") {
			description = "Location analysis completed with some details available. Basic plant recommendations provided."
		}
	}

	return &models.Recommendation{
		Description: description,
		Plants:      FallbackPlants(),
	}
}

// FallbackPlants returns hardy low-maintenance recommendations served
// when the model cannot produce usable ones. Superimposed images are
// empty since there is nothing to composite against.
func FallbackPlants() []models.Plant {
	return []models.Plant{
		{
			Name:                "Spider Plant",
			Description:         "Hardy indoor plant that adapts well to various lighting conditions and is easy to care for.",
			CareInstructions:    "Water when soil feels dry, prefers bright indirect light, well-draining soil.",
			CareTips:            "Remove brown tips, propagate plantlets for new plants, rotate occasionally for even growth.",
			PlacementConfidence: 0.7,
		},
		{
			Name:                "Pothos",
			Description:         "Versatile trailing plant that thrives in low to medium light and is very forgiving.",
			CareInstructions:    "Water when top inch of soil is dry, tolerates low light, standard potting mix.",
			CareTips:            "Trim to encourage bushier growth, can grow in water or soil, wipe leaves occasionally.",
			PlacementConfidence: 0.8,
		},
		{
			Name:                "Snake Plant",
			Description:         "Low-maintenance succulent that tolerates neglect and various lighting conditions.",
			CareInstructions:    "Water sparingly, allow soil to dry completely between waterings, tolerates low light.",
			CareTips:            "Avoid overwatering, clean leaves with damp cloth, divide to propagate new plants.",
			PlacementConfidence: 0.6,
		},
	}
}

// ==========================================
// COMMUNITY NARRATION
// ==========================================

type narrationGroup struct {
	Description []string         `json:"description"`
	Benefits    []models.Benefit `json:"benefits"`
}

type narrationResponse struct {
	Groups []narrationGroup `json:"groups"`
}

// parseNarration merges the model's descriptions and benefits back
// into the matched groups. A count mismatch is treated as malformed so
// the caller can fall back to local narration.
func parseNarration(resp *genai.GenerateContentResponse, groups []models.Match) ([]models.Match, error) {
	text := extractText(resp)

	var parsed narrationResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Groups) != len(groups) {
		return nil, errGroupCountMismatch
	}

	out := make([]models.Match, len(groups))
	for i, g := range groups {
		out[i] = g
		if len(parsed.Groups[i].Description) > 0 {
			out[i].Description = parsed.Groups[i].Description
		}
		if len(parsed.Groups[i].Benefits) > 0 {
			out[i].Benefits = parsed.Groups[i].Benefits
		}
	}
	return out, nil
}
