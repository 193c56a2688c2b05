package menu

import (
	"strings"

	"github.com/atomicstack/research-console/internal/rnd"
)

// Kind selects how a block is drawn.
type Kind int

const (
	KindText Kind = iota
	KindHeader
	KindRule
	KindControls
	KindSearch
	KindMessage
	KindTable
	KindGauge
)

// Segment is a run of text within a line. Bad marks a value the server
// flagged as insufficient.
type Segment struct {
	Text string
	Bad  bool
}

// Control is an activatable button. Activating it sends Request unless the
// control is disabled.
type Control struct {
	ID       string
	Label    string
	Disabled bool
	Selected bool
	Request  rnd.Request
}

// Block is one renderable unit of a screen, in display order.
type Block struct {
	Kind     Kind
	Text     string
	Segments []Segment
	Indent   int
	Controls []Control
	Rows     [][]string
	Value    int
	Max      int
}

// ActionResult communicates the outcome of sending an action.
type ActionResult struct {
	ID     string
	Action string
	Info   string
	Err    error
}

// Header builds a section heading.
func Header(text string) Block {
	return Block{Kind: KindHeader, Text: text}
}

// Text builds a plain line.
func Text(text string) Block {
	return Block{Kind: KindText, Text: text}
}

// Indented builds a plain line drawn under the previous entry.
func Indented(text string) Block {
	return Block{Kind: KindText, Text: text, Indent: 1}
}

// Message builds a standalone notice such as a missing-link warning.
func Message(text string) Block {
	return Block{Kind: KindMessage, Text: text}
}

// Rule builds a separator between list entries.
func Rule() Block {
	return Block{Kind: KindRule}
}

// Controls builds a row of buttons. Empty rows are dropped so callers can
// build conditional rows without checking.
func Controls(controls ...Control) []Block {
	if len(controls) == 0 {
		return nil
	}
	return []Block{{Kind: KindControls, Controls: controls}}
}

// Search builds the design search box. Submitting it sends the entered term.
func Search() Block {
	return Block{Kind: KindSearch}
}

// Table builds an aligned table of rows. Rows may differ in length.
func Table(rows [][]string) Block {
	return Block{Kind: KindTable, Rows: rows}
}

// Gauge builds a capacity bar. It is only meaningful when max is known.
func Gauge(label string, value, limit int) Block {
	return Block{Kind: KindGauge, Text: label, Value: value, Max: limit}
}

// Button builds an enabled action control.
func Button(id, label string, req rnd.Request) Control {
	return Control{ID: id, Label: label, Request: req}
}

// PlainText joins a block's text and segments for tests and logs.
func (b Block) PlainText() string {
	if len(b.Segments) == 0 {
		return b.Text
	}
	var sb strings.Builder
	sb.WriteString(b.Text)
	for _, seg := range b.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// EnabledControls returns every enabled control in render order.
func EnabledControls(blocks []Block) []Control {
	out := make([]Control, 0, 8)
	for _, b := range blocks {
		if b.Kind != KindControls {
			continue
		}
		for _, c := range b.Controls {
			if !c.Disabled {
				out = append(out, c)
			}
		}
	}
	return out
}

// FindControl locates a control by ID.
func FindControl(blocks []Block, id string) (Control, bool) {
	for _, b := range blocks {
		for _, c := range b.Controls {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Control{}, false
}

// HasSearch reports whether the blocks include the search box.
func HasSearch(blocks []Block) bool {
	for _, b := range blocks {
		if b.Kind == KindSearch {
			return true
		}
	}
	return false
}

func joinBlocks(groups ...[]Block) []Block {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Block, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
