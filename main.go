package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/research-console/internal/app"
	"github.com/atomicstack/research-console/internal/config"
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/logging/events"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the research console needs an interactive terminal")

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	report := newStartupReport(cfg, probeTerminals(standardDescriptors()))
	events.App.Start(report)
	if report.Terminal == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNoTerminal)
		os.Exit(2)
	}

	err := app.Run(cfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupReport is traced once at launch.
type startupReport struct {
	Argv       []string          `json:"argv"`
	Flags      map[string]string `json:"flags"`
	Config     config.Config     `json:"config"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	Terminal   *terminalSize     `json:"terminal,omitempty"`
	Probes     []terminalProbe   `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type descriptor struct {
	name string
	fd   int
}

func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdin", int(os.Stdin.Fd())},
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

func newStartupReport(cfg config.Config, probes []terminalProbe) startupReport {
	flags := make(map[string]string, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = fmt.Sprint(cfg.Logging.Trace)
	flags["logFile"] = cfg.Logging.FilePath

	report := startupReport{
		Argv:   cfg.Args,
		Flags:  flags,
		Config: cfg,
		Probes: probes,
	}
	if exe, err := os.Executable(); err == nil {
		report.Executable = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		report.Cwd = cwd
	}
	for _, p := range probes {
		if p.IsTerminal && p.Error == "" {
			report.Terminal = &terminalSize{Source: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	return report
}

// probeTerminals reports which descriptors are attached to a terminal and
// their dimensions.
func probeTerminals(descriptors []descriptor) []terminalProbe {
	results := make([]terminalProbe, 0, len(descriptors))
	for _, d := range descriptors {
		entry := terminalProbe{Name: d.name}
		if d.fd >= 0 && term.IsTerminal(d.fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(d.fd); err == nil {
				entry.Width, entry.Height = width, height
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return results
}
