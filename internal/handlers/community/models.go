// internal/handlers/community/models.go
package community

import "plantscape-service/internal/models"

// Request is the /community request body. Each user's plants may be
// bare name strings or full plant objects; both normalize to names.
type Request struct {
	Users []models.User `json:"users"`
}

// errorResponse matches the error envelope the mobile client expects.
type errorResponse struct {
	Error string `json:"error"`
}
