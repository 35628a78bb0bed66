// internal/models/location.go
package models

// Location holds GPS coordinates from the capture device.
// Altitude is optional and defaults to 0 when the client sends
// only latitude and longitude.
type Location struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}
