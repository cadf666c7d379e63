package external

import (
	"weather-cli/internal/domain/entity"
)

// Coordinates of the matched location.
type Coordinates struct {
	Longitude float64 `json:"lon"`
	Latitude  float64 `json:"lat"`
}

// Conditions holds the "main" block. Temperatures are in Kelvin.
type Conditions struct {
	TemperatureKelvin float32 `json:"temp"`
	HumidityPercent   int32   `json:"humidity"`
	Pressure          float32 `json:"pressure"`
	TempMin           float32 `json:"temp_min"`
	TempMax           float32 `json:"temp_max"`
}

// Fahrenheit converts the current temperature, unrounded.
func (c Conditions) Fahrenheit() float32 {
	return entity.KelvinToFahrenheit(c.TemperatureKelvin)
}

// Wind speed in m/s and direction in degrees clockwise from true north.
type Wind struct {
	SpeedMetersPerSecond float32 `json:"speed"`
	DirectionDegrees     float32 `json:"deg"`
}

// SpeedMph converts the speed with the given mph-per-m/s factor.
func (w Wind) SpeedMph(factor float32) float32 {
	return entity.MetersPerSecondToMph(w.SpeedMetersPerSecond, factor)
}

// Compass buckets the direction into one of eight sectors.
func (w Wind) Compass() entity.Compass {
	return entity.CompassFromDegrees(float64(w.DirectionDegrees))
}

// Weather is a successful current weather response.
type Weather struct {
	CityName    string      `json:"name"`
	Coordinates Coordinates `json:"coord"`
	Conditions  Conditions  `json:"main"`
	Wind        Wind        `json:"wind"`
}

// Report builds the display view using factor for the wind speed.
func (w Weather) Report(factor float32) entity.WeatherReport {
	return entity.WeatherReport{
		City:          w.CityName,
		Latitude:      w.Coordinates.Latitude,
		Longitude:     w.Coordinates.Longitude,
		Fahrenheit:    w.Conditions.Fahrenheit(),
		HumidityPct:   w.Conditions.HumidityPercent,
		WindMph:       w.Wind.SpeedMph(factor),
		WindDirection: w.Wind.Compass(),
	}
}
