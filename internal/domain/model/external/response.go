package external

import (
	"encoding/json"
	"fmt"

	"weather-cli/internal/domain/model"
)

// ApiResponse holds exactly one of Weather or Error.
type ApiResponse struct {
	Weather *Weather
	Error   *ApiError
}

// IsError reports whether the provider answered with its error envelope.
func (r *ApiResponse) IsError() bool {
	return r.Error != nil
}

// The wire mirrors use pointers so absent fields can be told apart from zero values.
type weatherWire struct {
	Name  *string          `json:"name"`
	Coord *coordinatesWire `json:"coord"`
	Main  *conditionsWire  `json:"main"`
	Wind  *windWire        `json:"wind"`
}

type coordinatesWire struct {
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

type conditionsWire struct {
	Temp     *float32 `json:"temp"`
	Humidity *int32   `json:"humidity"`
	Pressure *float32 `json:"pressure"`
	TempMin  *float32 `json:"temp_min"`
	TempMax  *float32 `json:"temp_max"`
}

type windWire struct {
	Speed *float32 `json:"speed"`
	Deg   *float32 `json:"deg"`
}

// ParseResponse reads a body as a Weather first and as an ApiError second.
// The provider sends no discriminant, so the order is fixed: a body that satisfies
// the weather shape is always weather. A body matching neither shape gives a
// *model.DeserializationError holding the raw text.
func ParseResponse(body []byte) (*ApiResponse, error) {
	weather, weatherErr := parseWeather(body)
	if weatherErr == nil {
		return &ApiResponse{Weather: weather}, nil
	}

	var apiErr ApiError
	errorErr := apiErr.UnmarshalJSON(body)
	if errorErr == nil {
		return &ApiResponse{Error: &apiErr}, nil
	}

	return nil, &model.DeserializationError{
		Body:        string(body),
		WeatherErr:  fmt.Errorf("not a weather payload: %w", weatherErr),
		APIErrorErr: fmt.Errorf("not an error payload: %w", errorErr),
	}
}

func parseWeather(body []byte) (*Weather, error) {
	var wire weatherWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}

	switch {
	case wire.Name == nil:
		return nil, missingField("name")
	case wire.Coord == nil:
		return nil, missingField("coord")
	case wire.Main == nil:
		return nil, missingField("main")
	case wire.Wind == nil:
		return nil, missingField("wind")
	}

	fields := []struct {
		name    string
		present bool
	}{
		{"coord.lon", wire.Coord.Lon != nil},
		{"coord.lat", wire.Coord.Lat != nil},
		{"main.temp", wire.Main.Temp != nil},
		{"main.humidity", wire.Main.Humidity != nil},
		{"main.pressure", wire.Main.Pressure != nil},
		{"main.temp_min", wire.Main.TempMin != nil},
		{"main.temp_max", wire.Main.TempMax != nil},
		{"wind.speed", wire.Wind.Speed != nil},
		{"wind.deg", wire.Wind.Deg != nil},
	}
	for _, f := range fields {
		if !f.present {
			return nil, missingField(f.name)
		}
	}

	return &Weather{
		CityName: *wire.Name,
		Coordinates: Coordinates{
			Longitude: *wire.Coord.Lon,
			Latitude:  *wire.Coord.Lat,
		},
		Conditions: Conditions{
			TemperatureKelvin: *wire.Main.Temp,
			HumidityPercent:   *wire.Main.Humidity,
			Pressure:          *wire.Main.Pressure,
			TempMin:           *wire.Main.TempMin,
			TempMax:           *wire.Main.TempMax,
		},
		Wind: Wind{
			SpeedMetersPerSecond: *wire.Wind.Speed,
			DirectionDegrees:     *wire.Wind.Deg,
		},
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
