package entity

import (
	"math"
	"testing"
)

func TestCompassFromDegrees(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22.5, "N"},
		{22.6, "NE"},
		{44.9, "NE"},
		{45, "NE"},
		{67.5, "NE"},
		{89.9, "E"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{200, "S"},
		{202.5, "S"},
		{202.6, "SW"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "NW"},
		{337.6, "N"},
		{359.9, "N"},
		{360, "N"},
		{405, "NE"},
		{-45, "NW"},
		{-1e-300, "N"},
		{720.5, "N"},
	}

	for _, tt := range tests {
		if got := CompassFromDegrees(tt.degrees).String(); got != tt.want {
			t.Errorf("CompassFromDegrees(%v) = %s, want %s", tt.degrees, got, tt.want)
		}
	}
}

func TestCompassFromDegreesIsTotal(t *testing.T) {
	labels := map[string]bool{}
	for _, l := range compassLabels {
		labels[l] = true
	}

	for d := -720.0; d <= 720.0; d += 0.1 {
		c := CompassFromDegrees(d)
		if c < North || c > NorthWest {
			t.Fatalf("CompassFromDegrees(%v) = %d, outside the eight sectors", d, c)
		}
		if !labels[c.String()] {
			t.Fatalf("CompassFromDegrees(%v) has unknown label %q", d, c)
		}
	}

	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := CompassFromDegrees(d); got != North {
			t.Errorf("CompassFromDegrees(%v) = %s, want N", d, got)
		}
	}
}

func TestCompassMarshalText(t *testing.T) {
	b, err := SouthWest.MarshalText()
	if err != nil || string(b) != "SW" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
}

func TestCompassStringWraps(t *testing.T) {
	tests := map[Compass]string{
		North:     "N",
		NorthWest: "NW",
		8:         "N",
		-1:        "NW",
		-9:        "NW",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Compass(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
