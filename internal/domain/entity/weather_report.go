package entity

import (
	"math"
	"strconv"
)

// WeatherReport is the display view of one successful lookup.
type WeatherReport struct {
	RequestID     string  `json:"requestId"`
	City          string  `json:"city"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Fahrenheit    float32 `json:"fahrenheit"`
	HumidityPct   int32   `json:"humidity"`
	WindMph       float32 `json:"windMph"`
	WindDirection Compass `json:"windDirection"`
}

// TemperatureText is the temperature rounded to whole degrees.
func (r WeatherReport) TemperatureText() string {
	return FormatRounded(r.Fahrenheit)
}

// WindSpeedText is the wind speed rounded to whole mph.
func (r WeatherReport) WindSpeedText() string {
	return FormatRounded(r.WindMph)
}

// FormatRounded renders v with no decimals; values that round to zero print as "0", never "-0".
func FormatRounded(v float32) string {
	rounded := math.Round(float64(v))
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', 0, 64)
}
