package entity

const (
	// MphPerMeterPerSecond is the exact m/s to mph ratio rounded to five places.
	MphPerMeterPerSecond float32 = 2.23694

	// LegacyMphFactor is the 11/25 ratio older releases used for the same conversion.
	LegacyMphFactor float32 = 11.0 / 25.0
)

// KelvinToFahrenheit converts without rounding.
func KelvinToFahrenheit(kelvin float32) float32 {
	return kelvin*9/5 - 459.67
}

// MetersPerSecondToMph multiplies speed by factor (mph per m/s).
func MetersPerSecondToMph(speed, factor float32) float32 {
	return speed * factor
}
