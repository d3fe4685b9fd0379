package utils

// ValidateCoordinates checks that a point lies within WGS84 bounds.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
