package models

// CentsToPrice converts the integer cents the backend serves into a decimal
// amount for display and conversion.
func CentsToPrice(cents int64) float64 {
	return float64(cents) / 100
}
