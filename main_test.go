package main

import (
	"testing"
	"time"

	"github.com/atomicstack/research-console/internal/app"
	"github.com/atomicstack/research-console/internal/config"
)

func TestProbeTerminalsKeepsDescriptorOrder(t *testing.T) {
	probes := probeTerminals(standardDescriptors())
	if len(probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, probes[i].Name)
		}
	}
}

func TestProbeTerminalsRejectsInvalidDescriptor(t *testing.T) {
	probes := probeTerminals([]descriptor{{name: "closed", fd: -1}})
	if probes[0].IsTerminal {
		t.Fatalf("expected invalid descriptor to be reported as non-terminal")
	}
}

func TestStartupReportPicksFirstUsableTerminal(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			URL:        "nats://game:4222",
			Console:    "console2",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			Refresh:    5 * time.Second,
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags: map[string]string{
			"url":     "nats://game:4222",
			"console": "console2",
			"footer":  "true",
		},
		Args: []string{"-console", "console2"},
	}
	probes := []terminalProbe{
		{Name: "stdin"},
		{Name: "stdout", IsTerminal: true, Error: "inappropriate ioctl"},
		{Name: "stderr", IsTerminal: true, Width: 120, Height: 40},
	}

	report := newStartupReport(cfg, probes)

	if report.Terminal == nil || report.Terminal.Source != "stderr" {
		t.Fatalf("expected stderr to be the detected terminal, got %+v", report.Terminal)
	}
	if report.Terminal.Width != 120 || report.Terminal.Height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", report.Terminal.Width, report.Terminal.Height)
	}
	if report.Flags["console"] != "console2" {
		t.Fatalf("expected console flag %q, got %q", "console2", report.Flags["console"])
	}
	if report.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag true, got %q", report.Flags["trace"])
	}
	if report.Flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %q", report.Flags["logFile"])
	}
	if report.Config.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, report.Config.App)
	}
	if cfg.Flags["trace"] != "" {
		t.Fatalf("expected caller flags to be left untouched")
	}
}

func TestStartupReportWithoutTerminal(t *testing.T) {
	report := newStartupReport(config.Config{}, []terminalProbe{{Name: "stdin"}})
	if report.Terminal != nil {
		t.Fatalf("expected no terminal, got %+v", report.Terminal)
	}
}
