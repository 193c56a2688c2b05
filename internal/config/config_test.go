package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/research-console/internal/transport"
	"github.com/nats-io/nats.go"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.URL != nats.DefaultURL {
		t.Fatalf("expected default url, got %q", cfg.App.URL)
	}
	if cfg.App.Console != transport.DefaultConsole {
		t.Fatalf("expected default console, got %q", cfg.App.Console)
	}
	if !cfg.App.Mouse {
		t.Fatalf("expected mouse enabled by default")
	}
	if cfg.App.Refresh != 0 {
		t.Fatalf("expected refresh disabled by default, got %s", cfg.App.Refresh)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envURL + "=nats://env:4222",
		envConsole + "=console2",
		envRefresh + "=5s",
		envTrace + "=true",
	}
	cfg, err := LoadArgs([]string{"-console", "console3", "-width", "80"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.URL != "nats://env:4222" {
		t.Fatalf("expected url from environment, got %q", cfg.App.URL)
	}
	if cfg.App.Console != "console3" {
		t.Fatalf("expected flag to win, got %q", cfg.App.Console)
	}
	if cfg.App.Refresh != 5*time.Second {
		t.Fatalf("expected 5s refresh, got %s", cfg.App.Refresh)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
	if cfg.Flags["width"] != "80" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsIgnoresBadEnvironmentValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envMouse + "=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.Mouse {
		t.Fatalf("expected fallbacks for unparsable values, got %+v", cfg.App)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs(nil, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	cfg.App.Console = "bad.console"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected dotted console id to fail")
	}
	cfg, _ = LoadArgs(nil, nil)
	cfg.App.Refresh = -time.Second
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative refresh to fail")
	}
}

func TestWithEnvFileKeepsExplicitEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.env")
	content := envConsole + "=from-file\n" + envURL + "=nats://file:4222\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	environ, err := withEnvFile([]string{envFile + "=" + path, envConsole + "=from-env"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Console != "from-env" {
		t.Fatalf("expected explicit environment to win, got %q", cfg.App.Console)
	}
	if cfg.App.URL != "nats://file:4222" {
		t.Fatalf("expected url from env file, got %q", cfg.App.URL)
	}
}

func TestWithEnvFileMissingIsIgnored(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	environ, err := withEnvFile([]string{envFile + "=" + missing})
	if err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
	if len(environ) != 1 || !strings.HasPrefix(environ[0], envFile) {
		t.Fatalf("expected environment unchanged, got %v", environ)
	}
}

func TestLoadSimArgs(t *testing.T) {
	cfg, err := LoadSimArgs([]string{"-port", "4333", "-http", ":8081"}, []string{envSimConsole + "=lab"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 4333 || cfg.HTTPAddr != ":8081" || cfg.Console != "lab" {
		t.Fatalf("unexpected sim config %+v", cfg)
	}
	if cfg.Fixture != defaultFixture {
		t.Fatalf("expected default fixture, got %q", cfg.Fixture)
	}
	if _, err := LoadSimArgs([]string{"-port", "70000"}, nil); err == nil {
		t.Fatalf("expected out of range port to fail")
	}
}
