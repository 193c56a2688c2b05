package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/research-console/internal/format/table"
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	footerHelp       = "↑/↓ move  enter activate  / search  esc back  ctrl+r refresh  ctrl+c quit"
	focusIndicator   = "▸ "
	defaultRuleWidth = 32
	controlGap       = " "
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 32)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Title})
	}
	if m.backendLastErr != "" {
		lines = append(lines, styledLine{text: "Backend: " + m.backendLastErr, style: styles.Warning})
	}
	lines = append(lines, m.bodyLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHelp, style: styles.Footer})
	}
	// Reserve the last row for the status line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines = append(lines, applyWidth([]styledLine{statusLine}, m.width)...)
	out := renderLines(lines)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// bodyLines renders the screen area between the header and the info line.
func (m *Model) bodyLines() []styledLine {
	if !m.snapshots.Ready() {
		return []styledLine{{text: "Waiting for the research console…", style: styles.Loading}}
	}
	if message, waiting := m.snapshots.Current().Waiting(); waiting {
		return m.overlayLines(message)
	}
	body, focusLine := m.renderBlocks(m.blocks())
	maxVisible := m.maxVisibleLines()
	if maxVisible <= 0 || len(body) <= maxVisible {
		m.level.ViewportOffset = 0
		return body
	}
	m.level.EnsureLineVisible(focusLine, len(body), maxVisible)
	start := m.level.ViewportOffset
	return body[start : start+maxVisible]
}

// overlayLines centres the wait message in the body area. Controls are not
// drawn so nothing underneath can be clicked.
func (m *Model) overlayLines(message string) []styledLine {
	box := message
	if styles.Overlay != nil {
		box = styles.Overlay.Render(message)
	}
	if m.width > 0 && m.maxVisibleLines() > 0 {
		box = lipgloss.Place(m.width, m.maxVisibleLines(), lipgloss.Center, lipgloss.Center, box)
	}
	rows := strings.Split(box, "\n")
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

// renderBlocks turns blocks into lines and reports which line holds the
// focused control, or -1.
func (m *Model) renderBlocks(blocks []menu.Block) ([]styledLine, int) {
	lines := make([]styledLine, 0, len(blocks))
	focusLine := -1
	for _, b := range blocks {
		switch b.Kind {
		case menu.KindHeader:
			lines = append(lines, styledLine{text: b.Text, style: styles.Header})
		case menu.KindMessage:
			lines = append(lines, styledLine{text: b.Text, style: styles.Message})
		case menu.KindRule:
			lines = append(lines, styledLine{text: strings.Repeat("─", m.ruleWidth()), style: styles.Rule})
		case menu.KindText:
			lines = append(lines, m.textLine(b))
		case menu.KindSearch:
			view := m.search.View()
			if m.zones != nil {
				view = m.zones.Mark(m.prefix+searchZoneID, view)
			}
			lines = append(lines, styledLine{text: view, raw: true})
		case menu.KindTable:
			for _, row := range table.Format(b.Rows, tableAlignments(b.Rows)) {
				lines = append(lines, styledLine{text: row, style: styles.Item})
			}
		case menu.KindGauge:
			lines = append(lines, m.gaugeLine(b))
		case menu.KindControls:
			rows, focused := m.controlLines(b.Controls)
			if focused >= 0 {
				focusLine = len(lines) + focused
			}
			lines = append(lines, rows...)
		}
	}
	return lines, focusLine
}

func (m *Model) textLine(b menu.Block) styledLine {
	indent := strings.Repeat("  ", b.Indent)
	if len(b.Segments) == 0 {
		return styledLine{text: indent + b.Text, style: styles.Item}
	}
	var sb strings.Builder
	sb.WriteString(render(styles.Item, indent+b.Text))
	for _, seg := range b.Segments {
		style := styles.Item
		if seg.Bad {
			style = styles.Bad
		}
		sb.WriteString(render(style, seg.Text))
	}
	return styledLine{text: sb.String(), raw: true}
}

func (m *Model) gaugeLine(b menu.Block) styledLine {
	pct := 0.0
	if b.Max > 0 {
		pct = float64(b.Value) / float64(b.Max)
	}
	pct = min(max(pct, 0), 1)
	text := fmt.Sprintf("%s %s %d/%d", render(styles.Item, b.Text), m.gauge.ViewAs(pct), b.Value, b.Max)
	return styledLine{text: text, raw: true}
}

// controlLines lays buttons out left to right, wrapping at the terminal width.
func (m *Model) controlLines(controls []menu.Control) ([]styledLine, int) {
	focusedID := ""
	if current := m.currentLevel(); current != nil {
		if ctrl, ok := current.Current(); ok {
			focusedID = ctrl.ID
		}
	}
	var (
		lines     []styledLine
		row       strings.Builder
		rowWidth  int
		focusLine = -1
	)
	flush := func() {
		if rowWidth == 0 {
			return
		}
		lines = append(lines, styledLine{text: row.String(), raw: true})
		row.Reset()
		rowWidth = 0
	}
	for _, ctrl := range controls {
		focused := ctrl.ID != "" && ctrl.ID == focusedID
		button := m.renderControl(ctrl, focused)
		w := lipgloss.Width(button)
		if m.width > 0 && rowWidth > 0 && rowWidth+len(controlGap)+w > m.width {
			flush()
		}
		if rowWidth > 0 {
			row.WriteString(controlGap)
			rowWidth += len(controlGap)
		}
		row.WriteString(button)
		rowWidth += w
		if focused {
			focusLine = len(lines)
		}
	}
	flush()
	return lines, focusLine
}

func (m *Model) renderControl(ctrl menu.Control, focused bool) string {
	label := ctrl.Label
	style := styles.Button
	switch {
	case focused:
		label = focusIndicator + label
		style = styles.ButtonFocused
	case ctrl.Disabled && ctrl.Selected:
		style = styles.ButtonCurrent
	case ctrl.Disabled:
		style = styles.ButtonDisabled
	case ctrl.Selected:
		style = styles.ButtonSelected
	}
	text := render(style, label)
	if m.zones != nil && !ctrl.Disabled && ctrl.ID != "" {
		text = m.zones.Mark(m.prefix+ctrl.ID, text)
	}
	return text
}

func tableAlignments(rows [][]string) []table.Alignment {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	aligns := make([]table.Alignment, cols)
	for i := 1; i < cols; i++ {
		aligns[i] = table.AlignRight
	}
	return aligns
}

func (m *Model) ruleWidth() int {
	if m.width > 0 && m.width < defaultRuleWidth {
		return m.width
	}
	return defaultRuleWidth
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	if m.snapshots.Ready() {
		segments = append(segments, m.registry.Titles(m.snapshots.Current().Nav)...)
	}
	return strings.Join(segments, menuHeaderSeparator)
}

// maxVisibleLines is the number of body rows that fit, or -1 without a
// height limit.
func (m *Model) maxVisibleLines() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + status line
	if m.backendLastErr != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
