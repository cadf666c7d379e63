package api

import (
	"weather-cli/internal/domain/entity"
	"weather-cli/pkg/http"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	apiKeyParam        = "APPID"
)

// BuildURL returns <baseURL>/data/2.5/weather?APPID=<apiKey>&<q|zip|id>=<value>.
// Both values are percent-encoded.
func BuildURL(baseURL, apiKey string, query entity.Query) string {
	return http.ComposeURL(baseURL, currentWeatherPath, queryParams(apiKey, query))
}

func queryParams(apiKey string, query entity.Query) map[string]string {
	return map[string]string{
		apiKeyParam:   apiKey,
		query.Param(): query.Value(),
	}
}
