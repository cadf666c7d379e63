package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"weather-cli/configs"
	"weather-cli/internal/domain/entity"
	"weather-cli/internal/domain/gateway/api"
	"weather-cli/internal/domain/model"
	"weather-cli/internal/domain/model/external"
	"weather-cli/internal/domain/usecase/weather"
	infrahttp "weather-cli/internal/infra/http"
	"weather-cli/pkg/http"
	"weather-cli/pkg/log"
	"weather-cli/pkg/msg"
	"weather-cli/pkg/resource"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// WeatherCommand is the command-line driver: configuration, queries, output and exit status.
type WeatherCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewWeatherCommand(stdout io.Writer, stderr io.Writer) *WeatherCommand {
	return &WeatherCommand{stdout: stdout, stderr: stderr}
}

type options struct {
	configPath string
	apiKey     string
	timeout    time.Duration
	logLevel   string
	mphFactor  float32
}

// Run executes one invocation and returns the process exit code.
// Queries run one after another; the code is ExitFailure if any of them failed.
func (cmd *WeatherCommand) Run(ctx context.Context, args []string) int {
	if err := loadResources(); err != nil {
		fmt.Fprintln(cmd.stderr, err)
		return ExitFailure
	}

	flags, opts := cmd.newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(cmd.stderr, msg.GetMessage("app.bad-flags", err.Error()))
		return ExitFailure
	}
	applyOverrides(flags, opts)

	if err := log.Configure(resource.GetString("app.log.level"), cmd.stderr); err != nil {
		cmd.report(&model.ConfigurationError{Reason: msg.GetMessage("config.invalid-property", "app.log.level"), Err: err})
		return ExitFailure
	}
	defer log.Sync()

	if factor := resource.GetFloat64("app.units.mph-per-mps"); factor <= 0 {
		log.Warn("Ignoring non-positive mph factor",
			zap.Float64("mph_factor", factor),
			zap.Float32("default", entity.MphPerMeterPerSecond))
		resource.Set("app.units.mph-per-mps", float64(entity.MphPerMeterPerSecond))
	}

	env, err := configs.LoadEnv(opts.configPath, resource.GetString("app.config.default-file"))
	if err != nil {
		cmd.report(err)
		return ExitFailure
	}
	if opts.apiKey != "" {
		env.APIKey = opts.apiKey
	}
	if err := env.Validate(); err != nil {
		cmd.report(err)
		return ExitFailure
	}
	log.Info("Configuration loaded",
		zap.String("source", env.Source),
		zap.Bool("key_from_flag", opts.apiKey != ""),
		zap.String("base_url", resource.GetString("app.openweather.base-url")))

	queries, err := buildQueries(flags.Args(), env.DefaultLocation)
	if err != nil {
		cmd.report(err)
		return ExitFailure
	}

	useCase := newUseCase(env.APIKey)

	exitCode, printed := ExitOK, false
	for _, query := range queries {
		report, err := useCase.CurrentWeather(ctx, query)
		if err != nil {
			cmd.report(err)
			exitCode = ExitFailure
			continue
		}
		if printed {
			fmt.Fprintln(cmd.stdout)
		}
		cmd.print(report)
		printed = true
	}
	return exitCode
}

func (cmd *WeatherCommand) newFlagSet() (*pflag.FlagSet, *options) {
	opts := &options{}
	flags := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	flags.StringVar(&opts.configPath, "config", "", "dotenv file with OWM_API_KEY and OWM_DEFAULT_LOCATION")
	flags.StringVar(&opts.apiKey, "key", "", "API key, overrides OWM_API_KEY")
	flags.DurationVar(&opts.timeout, "timeout", resource.GetDuration("app.openweather.timeout"), "timeout for each request")
	flags.StringVar(&opts.logLevel, "log-level", resource.GetString("app.log.level"), "log level written to stderr")
	flags.Float32Var(&opts.mphFactor, "mph-factor", float32(resource.GetFloat64("app.units.mph-per-mps")), "mph per m/s used for wind speed")
	flags.Usage = func() {
		fmt.Fprintln(cmd.stderr, msg.GetMessage("app.usage"))
		fmt.Fprint(cmd.stderr, flags.FlagUsages())
	}

	return flags, opts
}

func (cmd *WeatherCommand) print(report *entity.WeatherReport) {
	fmt.Fprintln(cmd.stdout, msg.GetMessage("report.city", report.City))
	fmt.Fprintln(cmd.stdout, msg.GetMessage("report.temperature", report.TemperatureText()))
	fmt.Fprintln(cmd.stdout, msg.GetMessage("report.wind", report.WindSpeedText(), report.WindDirection.String()))
}

// report writes exactly one line to stderr for err.
func (cmd *WeatherCommand) report(err error) {
	var (
		apiErr   *external.ApiError
		cfgErr   *model.ConfigurationError
		transErr *model.TransportError
		deserErr *model.DeserializationError
		queryErr *queryError
	)

	kind, line := "unknown", msg.GetMessage("query.failed", err.Error())
	switch {
	case errors.As(err, &apiErr):
		kind, line = "api", msg.GetMessage("query.api-error", apiErr.Error())
	case errors.As(err, &cfgErr):
		kind = "configuration"
	case errors.As(err, &transErr):
		kind = "transport"
	case errors.As(err, &deserErr):
		kind = "deserialization"
	case errors.As(err, &queryErr):
		kind, line = "query", msg.GetMessage("query.invalid", queryErr.Err.Error())
	}

	log.Debug("Query failed", zap.String("kind", kind), zap.Error(err))
	fmt.Fprintln(cmd.stderr, line)
}

func loadResources() error {
	if err := msg.Load(configs.Messages); err != nil {
		return err
	}
	return resource.Load(configs.ApplicationProperties)
}

func applyOverrides(flags *pflag.FlagSet, opts *options) {
	if flags.Changed("timeout") {
		resource.Set("app.openweather.timeout", opts.timeout)
	}
	if flags.Changed("log-level") {
		resource.Set("app.log.level", opts.logLevel)
	}
	if flags.Changed("mph-factor") {
		resource.Set("app.units.mph-per-mps", float64(opts.mphFactor))
	}
}

func newUseCase(apiKey string) weather.UseCase {
	gateway := api.NewWeatherGateway(
		resource.GetString("app.openweather.base-url"),
		apiKey,
		http.ClientOptions{
			FollowRedirect:    resource.GetBool("app.openweather.follow-redirect"),
			ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
			DefaultHeaders:    map[string]string{"User-Agent": resource.GetString("app.name")},
			Logger:            infrahttp.NewZapHTTPLogger(),
		},
	)

	return weather.NewWeatherUseCase(
		gateway,
		float32(resource.GetFloat64("app.units.mph-per-mps")),
		resource.GetDuration("app.openweather.timeout"),
	)
}
