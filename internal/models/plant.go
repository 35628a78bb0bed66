// internal/models/plant.go
package models

// Plant is the wire shape for a single recommendation. superimposed_image is
// always serialized, even when synthesis failed and it is empty, because the
// mobile client parses the field unconditionally.
type Plant struct {
	Name                string  `json:"name"`
	Image               string  `json:"image"`
	SuperimposedImage   string  `json:"superimposed_image"`
	Description         string  `json:"description"`
	CareInstructions    string  `json:"care_instructions"`
	CareTips            string  `json:"care_tips"`
	ARModel             string  `json:"AR_model"`
	PlacementConfidence float64 `json:"placement_confidence"`
}

// ClampConfidence forces placement_confidence into [0,1]. Out-of-range values
// from the model are treated the same as missing ones.
func (p *Plant) ClampConfidence() {
	if p.PlacementConfidence < 0.0 || p.PlacementConfidence > 1.0 {
		p.PlacementConfidence = 0.5
	}
}

// LocationAnalysis is the narrative suitability assessment for an image +
// coordinate pair.
type LocationAnalysis struct {
	Description string `json:"description"`
}

// Recommendation is the /answer response envelope. Plants may be empty but the
// envelope is always well-formed; Error is set only on degraded responses.
type Recommendation struct {
	Description string  `json:"description"`
	Plants      []Plant `json:"plants"`
	Error       string  `json:"error,omitempty"`
}
