package model

import (
	"fmt"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r", "", "\n", " ")

// ConfigurationError reports missing or unreadable configuration; nothing was requested yet.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeserializationError reports a body that matched neither the weather nor the error shape.
// Its message stays on one line even when the body does not.
type DeserializationError struct {
	Body        string
	WeatherErr  error
	APIErrorErr error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("bad response from server (%v; %v): %s", e.WeatherErr, e.APIErrorErr, lineBreaks.Replace(e.Body))
}

func (e *DeserializationError) Unwrap() []error {
	return []error{e.WeatherErr, e.APIErrorErr}
}
