package configs

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"weather-cli/internal/domain/model"
	"weather-cli/pkg/msg"
)

//go:embed application.yml
var ApplicationProperties []byte

//go:embed messages.yml
var Messages []byte

const (
	apiKeyVar          = "OWM_API_KEY"
	defaultLocationVar = "OWM_DEFAULT_LOCATION"
	configFileVar      = "WEATHER_CONFIG"
)

// EnvConfig holds the credentials and default location, loaded once before the first request.
type EnvConfig struct {
	APIKey          string
	DefaultLocation string
	// Source is the dotfile that was read, empty when only the environment was used.
	Source string

	searched string
}

// LoadEnv reads OWM_API_KEY and OWM_DEFAULT_LOCATION from the environment and a dotenv file.
// An explicit path (or $WEATHER_CONFIG) must be readable; otherwise defaultFile in the home
// directory is read when it exists. Environment variables win over the file.
func LoadEnv(path string, defaultFile string) (*EnvConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	required := true
	if path == "" {
		path = os.Getenv(configFileVar)
	}
	if path == "" {
		required = false
		path = homeFile(defaultFile)
	}

	source := ""
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		err := v.ReadInConfig()
		switch {
		case err == nil:
			source = path
		case required || !isNotExist(err):
			return nil, &model.ConfigurationError{Reason: msg.GetMessage("config.unreadable-file", path), Err: err}
		}
	}

	env := &EnvConfig{
		APIKey:          v.GetString(apiKeyVar),
		DefaultLocation: v.GetString(defaultLocationVar),
		Source:          source,
		searched:        path,
	}
	return env, nil
}

// Validate fails when no API key was found.
func (e *EnvConfig) Validate() error {
	if e.APIKey == "" {
		where := e.searched
		if where == "" {
			where = "a config file"
		}
		return &model.ConfigurationError{Reason: msg.GetMessage("config.missing-key", where)}
	}
	return nil
}

func homeFile(name string) string {
	if name == "" {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
}
