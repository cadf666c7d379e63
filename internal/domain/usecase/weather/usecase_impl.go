package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/gateway/api"
	"weather-cli/pkg/log"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	mphFactor  float32
	timeout    time.Duration
}

// NewWeatherUseCase wires the gateway with the wind conversion factor and per-request timeout.
// A zero timeout leaves the request bounded only by the caller's context.
func NewWeatherUseCase(apiGateway api.WeatherGateway, mphFactor float32, timeout time.Duration) UseCase {
	if mphFactor <= 0 {
		mphFactor = entity.MphPerMeterPerSecond
	}
	return &weatherUseCase{
		apiGateway: apiGateway,
		mphFactor:  mphFactor,
		timeout:    timeout,
	}
}

// CurrentWeather fetches, branches on the response kind and converts units
func (uc *weatherUseCase) CurrentWeather(ctx context.Context, query entity.Query) (*entity.WeatherReport, error) {
	requestID := uuid.New().String()
	log.Debug("Querying current weather",
		zap.String("request_id", requestID),
		zap.Stringer("query", query))

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	response, err := uc.apiGateway.CurrentWeather(ctx, query)
	if err != nil {
		log.Debug("Current weather request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get current weather for %s: %w", query, err)
	}

	if response.IsError() {
		log.Debug("Provider reported an error",
			zap.String("request_id", requestID),
			zap.Int32("code", response.Error.Code),
			zap.String("message", response.Error.Message))
		return nil, response.Error
	}

	report := response.Weather.Report(uc.mphFactor)
	report.RequestID = requestID

	log.Debug("Current weather resolved",
		zap.String("request_id", requestID),
		zap.Any("report", report))
	return &report, nil
}
