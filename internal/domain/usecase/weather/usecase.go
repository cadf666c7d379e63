package weather

import (
	"context"

	"weather-cli/internal/domain/entity"
)

type UseCase interface {
	// CurrentWeather looks up one query and returns its display report.
	// A provider-reported failure is returned as *external.ApiError.
	CurrentWeather(ctx context.Context, query entity.Query) (*entity.WeatherReport, error)
}
