package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/research-console/internal/transport"
	"github.com/nats-io/nats.go"
)

// Sim captures runtime configuration for the rndsim development backend.
type Sim struct {
	Fixture  string
	Console  string
	Host     string
	Port     int
	HTTPAddr string
	Logging  Logging
}

const (
	envSimPrefix   = "RND_SIM_"
	envSimFixture  = envSimPrefix + "FIXTURE"
	envSimConsole  = envSimPrefix + "CONSOLE"
	envSimHost     = envSimPrefix + "HOST"
	envSimPort     = envSimPrefix + "PORT"
	envSimHTTPAddr = envSimPrefix + "HTTP"
	envSimTrace    = envSimPrefix + "TRACE"
	envSimLogFile  = envSimPrefix + "LOG_FILE"

	defaultFixture = "testdata/console.json5"
)

// LoadSim parses simulator configuration from CLI arguments, the
// environment and an optional .env file.
func LoadSim() (Sim, error) {
	environ, err := withEnvFile(os.Environ())
	if err != nil {
		return Sim{}, err
	}
	return LoadSimArgs(os.Args[1:], environ)
}

// LoadSimArgs allows tests to supply specific args/environment.
func LoadSimArgs(args []string, environ []string) (Sim, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("rndsim", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fixture := fs.String("fixture", envOrDefault(env, envSimFixture, defaultFixture), "JSON5 fixture holding the initial snapshot and design catalogue")
	console := fs.String("console", envOrDefault(env, envSimConsole, transport.DefaultConsole), "console id used in subject names")
	host := fs.String("host", envOrDefault(env, envSimHost, "127.0.0.1"), "listen host for the embedded NATS server")
	port := fs.Int("port", envOrInt(env, envSimPort, nats.DefaultPort), "listen port for the embedded NATS server")
	httpAddr := fs.String("http", envOrDefault(env, envSimHTTPAddr, ""), "serve /metrics, /health and /snapshot on this address")
	trace := fs.Bool("trace", envOrBool(env, envSimTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envSimLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Sim{}, err
	}
	if *port < 0 || *port > 65535 {
		return Sim{}, fmt.Errorf("port must be within 0-65535 (got %d)", *port)
	}
	if !transport.ValidConsole(*console) {
		return Sim{}, fmt.Errorf("console %q must be a single subject token", *console)
	}
	return Sim{
		Fixture:  *fixture,
		Console:  *console,
		Host:     *host,
		Port:     *port,
		HTTPAddr: *httpAddr,
		Logging:  Logging{FilePath: *logFile, Trace: *trace},
	}, nil
}
