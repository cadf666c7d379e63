package entity

import "math"

// Compass is one of the eight 45° wind direction sectors.
type Compass int

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var compassLabels = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the sector label. Values outside North..NorthWest wrap modulo 8.
func (c Compass) String() string {
	n := len(compassLabels)
	return compassLabels[(int(c)%n+n)%n]
}

// CompassFromDegrees buckets a direction in degrees clockwise from true north.
// Sectors are (center-22.5, center+22.5] around 0, 45, ... 315, so 22.5 is N and 67.5 is NE.
// Any float maps to a sector: values are reduced modulo 360 and non-finite values count as 0.
func CompassFromDegrees(degrees float64) Compass {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		degrees = 0
	}

	reduced := math.Mod(degrees, 360)
	if reduced < 0 {
		reduced += 360
	}

	// reduced is in [0, 360], so the ceiling is in [0, 8].
	sector := int(math.Ceil((reduced - 22.5) / 45))
	return Compass(((sector % 8) + 8) % 8)
}

// MarshalText encodes the sector as its label.
func (c Compass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
