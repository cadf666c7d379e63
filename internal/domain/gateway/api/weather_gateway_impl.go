package api

import (
	"context"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/model"
	"weather-cli/internal/domain/model/external"
	"weather-cli/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.RedactParams = append(clientOptions.RedactParams, apiKeyParam)

	return &weatherGatewayImpl{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// CurrentWeather issues one GET and parses whatever body comes back
func (w *weatherGatewayImpl) CurrentWeather(ctx context.Context, query entity.Query) (*external.ApiResponse, error) {
	response, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath(currentWeatherPath).
		WithQueryParams(queryParams(w.apiKey, query)).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		Execute()
	if err != nil {
		return nil, &model.TransportError{URL: BuildURL(w.baseURL, http.RedactedValue, query), Err: err}
	}

	return external.ParseResponse(response.Body)
}
