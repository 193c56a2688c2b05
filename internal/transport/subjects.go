package transport

import (
	"fmt"
	"strings"
)

// DefaultConsole is the console id used when none is configured.
const DefaultConsole = "console1"

// Subjects names the NATS subjects for one console.
type Subjects struct {
	Snapshot string
	Action   string
	State    string
}

// SubjectsFor returns the subjects for console id.
func SubjectsFor(console string) Subjects {
	console = strings.TrimSpace(console)
	if console == "" {
		console = DefaultConsole
	}
	return Subjects{
		Snapshot: fmt.Sprintf("rnd.%s.snapshot", console),
		Action:   fmt.Sprintf("rnd.%s.action", console),
		State:    fmt.Sprintf("rnd.%s.state", console),
	}
}

// ValidConsole reports whether id can be embedded in a subject token.
func ValidConsole(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, ". *>\t\r\n")
}
