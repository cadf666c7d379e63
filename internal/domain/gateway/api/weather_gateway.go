package api

import (
	"context"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/model/external"
)

// WeatherGateway defines the interface for the current weather provider
type WeatherGateway interface {
	// CurrentWeather fetches the current weather for a query.
	// The provider's own error envelope comes back as a response, not as an error;
	// errors are *model.TransportError or *model.DeserializationError.
	CurrentWeather(ctx context.Context, query entity.Query) (*external.ApiResponse, error)
}
