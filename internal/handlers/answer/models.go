// internal/handlers/answer/models.go
package answer

// Request is the /answer request body. Image is base64, optionally
// with a data URL prefix. Location is [latitude, longitude] or
// [latitude, longitude, altitude].
type Request struct {
	Image    string    `json:"image"`
	Location []float64 `json:"location"`
}
