package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/research-console/internal/config"
)

func TestRunFailsOnMissingFixture(t *testing.T) {
	cfg := config.Sim{
		Fixture: filepath.Join(t.TempDir(), "missing.json5"),
		Console: "console1",
		Host:    "127.0.0.1",
		Port:    -1,
	}
	err := run(cfg)
	if err == nil {
		t.Fatalf("expected missing fixture to fail")
	}
	if !strings.Contains(err.Error(), "missing.json5") {
		t.Fatalf("expected error to name the fixture, got %v", err)
	}
}
