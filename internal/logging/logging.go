// Package logging appends plain error lines and JSON trace entries to a
// single log file shared by the console and the simulator.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "research-console.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile

	// writeMu serialises appends from the UI, watcher and NATS goroutines.
	writeMu sync.Mutex
)

type traceEntry struct {
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Payload any       `json:"payload,omitempty"`
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	appendLog("logging", func(w io.Writer) error {
		log.New(w, "", log.LstdFlags).Println(err)
		return nil
	})
}

// Errorf formats and logs an error line.
func Errorf(format string, args ...any) {
	Error(fmt.Errorf(format, args...))
}

// Infof logs a plain informational line.
func Infof(format string, args ...any) {
	appendLog("logging", func(w io.Writer) error {
		log.New(w, "info: ", log.LstdFlags).Printf(format, args...)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a JSON entry when tracing is enabled.
func Trace(event string, payload any) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	appendLog("trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Missing directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the configured log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func appendLog(kind string, write func(io.Writer) error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	f, err := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", kind, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", kind, err)
	}
}
