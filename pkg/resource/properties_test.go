package resource

import (
	"testing"
	"time"
)

const testProperties = `
app:
  name: weather
  retries: 0
  openweather:
    base-url: ${TEST_OWM_BASE_URL:https://api.openweathermap.org}
    timeout: ${TEST_OWM_TIMEOUT:10s}
  units:
    mph-per-mps: 2.23694
  missing: ${TEST_OWM_UNSET:}
`

func TestLoadResolvesDefaults(t *testing.T) {
	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetString("app.name"); got != "weather" {
		t.Errorf("expected plain value 'weather', got %q", got)
	}
	if got := GetString("app.openweather.base-url"); got != "https://api.openweathermap.org" {
		t.Errorf("expected default base url, got %q", got)
	}
	if got := GetDuration("app.openweather.timeout"); got != 10*time.Second {
		t.Errorf("expected 10s, got %v", got)
	}
	if got := GetFloat64("app.units.mph-per-mps"); got != 2.23694 {
		t.Errorf("expected 2.23694, got %v", got)
	}
	if got := GetString("app.retries"); got != "0" {
		t.Errorf("expected 0, got %q", got)
	}
	if got := GetString("app.missing"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestLoadPrefersEnvironment(t *testing.T) {
	t.Setenv("TEST_OWM_BASE_URL", "http://localhost:9999")
	t.Setenv("TEST_OWM_TIMEOUT", "250ms")

	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetString("app.openweather.base-url"); got != "http://localhost:9999" {
		t.Errorf("expected env base url, got %q", got)
	}
	if got := GetDuration("app.openweather.timeout"); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}
}

func TestSetOverrides(t *testing.T) {
	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Set("app.units.mph-per-mps", 0.44)

	if got := GetFloat64("app.units.mph-per-mps"); got != 0.44 {
		t.Errorf("expected override 0.44, got %v", got)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	if err := Load([]byte("app: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}
