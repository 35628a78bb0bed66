// internal/common/gemini/prompt.go
package gemini

import (
	"fmt"
	"strings"

	"plantscape-service/internal/models"
)

func buildLocationAnalysisPrompt(loc models.Location) string {
	return fmt.Sprintf(`Analyze this image taken at coordinates [%g, %g, %g] and provide a short description of the place with respect to suitability of plant growth.

Focus on:
- Environmental conditions (lighting, space, shelter)
- Soil quality and drainage (if visible)
- Climate considerations based on location
- Overall suitability for plant cultivation
- Any potential challenges or advantages for growing plants

Return the response in this exact JSON format:
{
    "description": "Short description of the place's suitability for plant growth"
}`, loc.Latitude, loc.Longitude, loc.Altitude)
}

func buildComprehensivePrompt(loc models.Location, maxPlants int) string {
	return fmt.Sprintf(`You are a plant growth expert. Analyze this image taken at coordinates [%g, %g, %g] and provide comprehensive analysis with visual enhancements.

TASK 1 - Location Analysis:
- Analyze the environment's suitability for plant growth
- Describe lighting conditions, space availability, and environmental factors
- Assess soil conditions and drainage if visible
- Consider climate based on coordinates
- Provide a short description of the place's suitability for plant growth

TASK 2 - Plant Recommendations with Visual Superimposition:
- Suggest up to %d plants suitable for this specific environment and climate zone
- For each plant, generate a superimposed image showing how it would look when placed in this location
- Ensure realistic proportions, positioning, and lighting in superimposed images
- Each plant should have unique placement to avoid overlap
- Maintain natural appearance and environmental harmony

For each recommended plant, provide:
- Name of the plant
- Reference image URL (use placeholder if needed)
- Superimposed image (base64 encoded) showing the plant placed in the original photo
- Description (2-3 sentences about the plant and why it suits this location)
- Care instructions (watering, sunlight, soil requirements)
- Care tips (seasonal advice, common issues, maintenance)
- AR model URL (use placeholder)
- Placement confidence score (0.0-1.0 based on how well the plant fits the environment)

CRITICAL REQUIREMENTS:
1. The superimposed_image field must contain a base64-encoded image showing the plant realistically placed in the user's original photograph
2. Each plant must have a unique placement position within the image
3. Consider realistic scale, lighting, and environmental integration
4. Maintain frontend compatibility with existing response structure

Return the response in this exact JSON format:
{
    "description": "Short description of the place's suitability for plant growth",
    "plants": [
        {
            "name": "Plant Name",
            "image": "https://example.com/plant-reference.jpg",
            "superimposed_image": "base64_encoded_superimposed_image_showing_plant_in_original_photo",
            "description": "Detailed description of the plant and why it suits this location",
            "care_instructions": "Specific care instructions including watering, sunlight, and soil requirements",
            "care_tips": "Seasonal advice and common care tips for optimal growth",
            "AR_model": "https://example.com/ar-model.glb",
            "placement_confidence": 0.85
        }
    ]
}`, loc.Latitude, loc.Longitude, loc.Altitude, maxPlants)
}

func buildNarrationPrompt(groups []models.Match) string {
	var sb strings.Builder
	sb.WriteString("You are a gardening community organizer. The following groups of users share common plants:\n\n")
	for i, g := range groups {
		fmt.Fprintf(&sb, "Group %d: %s\n", i+1, strings.Join(g.Users, ", "))
	}
	sb.WriteString(`
For each group, provide:
- A short description (one sentence per group) of why these users form a good plant community
- The benefits members could exchange (seeds, cuttings, care advice, produce)

Return the response in this exact JSON format:
{
    "groups": [
        {
            "description": ["Description of the group"],
            "benefits": [
                {"type": "seeds", "amount": "a handful", "direction": true}
            ]
        }
    ]
}
The groups array must have exactly one entry per input group, in the same order.`)
	return sb.String()
}
