package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/research-console/internal/app"
	"github.com/atomicstack/research-console/internal/transport"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPrefix      = "RND_CONSOLE_"
	envURL         = envPrefix + "URL"
	envConsole     = envPrefix + "CONSOLE"
	envWidth       = envPrefix + "WIDTH"
	envHeight      = envPrefix + "HEIGHT"
	envShowFooter  = envPrefix + "FOOTER"
	envMouse       = envPrefix + "MOUSE"
	envRefresh     = envPrefix + "REFRESH"
	envMetricsAddr = envPrefix + "METRICS_ADDR"
	envVerbose     = envPrefix + "VERBOSE"
	envTrace       = envPrefix + "TRACE"
	envLogFile     = envPrefix + "LOG_FILE"
	envFile        = envPrefix + "ENV_FILE"

	defaultEnvFile = ".env"
)

// Load parses configuration from CLI arguments, the environment and an
// optional .env file.
func Load() (Config, error) {
	environ, err := withEnvFile(os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// withEnvFile appends entries from the .env file that the real environment
// does not already set.
func withEnvFile(environ []string) ([]string, error) {
	env := parseEnv(environ)
	path := envOrDefault(env, envFile, defaultEnvFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return mergeEnv(environ, values), nil
}

func mergeEnv(environ []string, file map[string]string) []string {
	env := parseEnv(environ)
	merged := append([]string(nil), environ...)
	for k, v := range file {
		if _, ok := env[k]; ok {
			continue
		}
		merged = append(merged, k+"="+v)
	}
	return merged
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("research-console", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	url := fs.String("url", envOrDefault(env, envURL, nats.DefaultURL), "NATS server URL of the game server")
	console := fs.String("console", envOrDefault(env, envConsole, transport.DefaultConsole), "console id used in subject names")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse clicks on controls")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "re-request the snapshot at this interval (0 disables)")
	metricsAddr := fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "serve /metrics and /health on this address")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			URL:         *url,
			Console:     *console,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			Mouse:       *mouse,
			Refresh:     *refresh,
			MetricsAddr: *metricsAddr,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"url":         *url,
			"console":     *console,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"mouse":       strconv.FormatBool(*mouse),
			"refresh":     refresh.String(),
			"metricsAddr": *metricsAddr,
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.URL) == "" {
		return errors.New("url must not be empty")
	}
	if !transport.ValidConsole(cfg.App.Console) {
		return fmt.Errorf("console %q must be a single subject token", cfg.App.Console)
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	return nil
}
