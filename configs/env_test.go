package configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weather-cli/internal/domain/model"
	"weather-cli/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Load(Messages); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func writeDotfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotfile: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OWM_API_KEY", "")
	os.Unsetenv("OWM_API_KEY")
	t.Setenv("OWM_DEFAULT_LOCATION", "")
	os.Unsetenv("OWM_DEFAULT_LOCATION")
	t.Setenv("WEATHER_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
}

func TestLoadEnvFromDotfile(t *testing.T) {
	clearEnv(t)
	path := writeDotfile(t, "OWM_API_KEY=file-key\nOWM_DEFAULT_LOCATION=Lisbon\n")

	env, err := LoadEnv(path, ".weather.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.APIKey != "file-key" || env.DefaultLocation != "Lisbon" || env.Source != path {
		t.Errorf("unexpected config %+v", env)
	}
	if err := env.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoadEnvPrefersEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeDotfile(t, "OWM_API_KEY=file-key\nOWM_DEFAULT_LOCATION=Lisbon\n")
	t.Setenv("OWM_API_KEY", "env-key")

	env, err := LoadEnv(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.APIKey != "env-key" {
		t.Errorf("expected env-key, got %q", env.APIKey)
	}
	if env.DefaultLocation != "Lisbon" {
		t.Errorf("expected Lisbon from file, got %q", env.DefaultLocation)
	}
}

func TestLoadEnvUsesConfigVariable(t *testing.T) {
	clearEnv(t)
	path := writeDotfile(t, "OWM_API_KEY=var-key\n")
	t.Setenv("WEATHER_CONFIG", path)

	env, err := LoadEnv("", ".weather.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.APIKey != "var-key" {
		t.Errorf("expected var-key, got %q", env.APIKey)
	}
}

func TestLoadEnvReadsHomeDotfile(t *testing.T) {
	clearEnv(t)
	home := os.Getenv("HOME")
	if err := os.WriteFile(filepath.Join(home, ".weather.env"), []byte("OWM_API_KEY=home-key\n"), 0o600); err != nil {
		t.Fatalf("write dotfile: %v", err)
	}

	env, err := LoadEnv("", ".weather.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.APIKey != "home-key" {
		t.Errorf("expected home-key, got %q", env.APIKey)
	}
}

func TestLoadEnvMissingHomeDotfileIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("OWM_API_KEY", "env-key")

	env, err := LoadEnv("", ".weather.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.APIKey != "env-key" || env.Source != "" {
		t.Errorf("unexpected config %+v", env)
	}
}

func TestLoadEnvExplicitFileMustExist(t *testing.T) {
	clearEnv(t)

	_, err := LoadEnv(filepath.Join(t.TempDir(), "nope.env"), "")

	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot read config file") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateMissingKey(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv("", ".weather.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = env.Validate()
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "no API key") || !strings.Contains(err.Error(), ".weather.env") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestEmbeddedFilesParse(t *testing.T) {
	if len(ApplicationProperties) == 0 || len(Messages) == 0 {
		t.Fatal("expected embedded configuration files")
	}
	if got := msg.GetMessage("report.wind", "9", "S"); got != "9 mph S" {
		t.Errorf("unexpected wind template %q", got)
	}
}
