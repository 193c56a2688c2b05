package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/research-console/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestHeaderShowsBreadcrumb(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":4,"submenu":2,"linked_lathe":1}`)
	want := "research console" + menuHeaderSeparator + "protolathe" + menuHeaderSeparator + "material storage"
	if !strings.HasPrefix(h.View(), want) {
		t.Fatalf("expected header %q, got %q", want, h.View())
	}
}

func TestWaitOverlayBlocksActivation(t *testing.T) {
	h, sender := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":6,"submenu":0,"wait_message":"Syncing Database..."}`)
	view := h.View()
	if !strings.Contains(view, "Syncing Database...") {
		t.Fatalf("expected overlay message, got %q", view)
	}
	if strings.Contains(view, "Connect to Research Network") {
		t.Fatalf("expected controls hidden behind overlay")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if len(sender.sent) != 0 {
		t.Fatalf("expected overlay to block requests, got %d", len(sender.sent))
	}
	pushSnapshot(h, `{"menu":6,"submenu":0,"wait_message":""}`)
	if !strings.Contains(h.View(), "Connect to Research Network") {
		t.Fatalf("expected controls once the overlay clears")
	}
}

func TestViewRendersScreenContent(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":4,"submenu":2,"linked_lathe":1,"loaded_materials":[{"id":"iron","name":"Iron","amount":4000}]}`)
	view := h.View()
	for _, want := range []string{"Material Storage:", "Iron", "(2 sheets)", "1x", "All"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got %q", want, view)
		}
	}
}

func TestViewRendersStorageGauge(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":4,"submenu":0,"linked_lathe":1,"total_materials":500,"max_materials":1000}`)
	if !strings.Contains(h.View(), "500/1000") {
		t.Fatalf("expected capacity gauge, got %q", h.View())
	}
}

func TestViewMarksFocusedControl(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, settingsUnsynced)
	if !strings.Contains(h.View(), focusIndicator+"Main Menu") {
		t.Fatalf("expected focus indicator on first control, got %q", h.View())
	}
}

func TestViewWrapsControlsToWidth(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 30})
	pushSnapshot(h, `{"menu":4,"submenu":0,"linked_lathe":1}`)
	for _, line := range strings.Split(h.View(), "\n") {
		if w := len([]rune(stripANSI(line))); w > 30 {
			t.Fatalf("expected lines within width, got %d: %q", w, line)
		}
	}
}

func TestViewScrollsToFocusedControl(t *testing.T) {
	h, _ := newTestHarness(t, Options{Height: 8})
	pushSnapshot(h, `{"menu":4,"submenu":0,"linked_lathe":1,"categories":["A","B","C","D","E","F","G","H","I","J"]}`)
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if !strings.Contains(h.View(), focusIndicator+"J") {
		t.Fatalf("expected last category visible, got %q", h.View())
	}
	if lines := strings.Count(h.View(), "\n") + 1; lines > 8 {
		t.Fatalf("expected at most 8 lines, got %d", lines)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestDisabledControlsNeverShowSelectedStyle(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	h, _ := newTestHarness(t, Options{})
	m := h.Model()
	label := "Disconnect from Research Network"

	current := m.renderControl(menu.Control{ID: "settings:disconnect", Label: label, Disabled: true, Selected: true}, false)
	if current == styles.ButtonSelected.Render(label) {
		t.Fatalf("expected a disabled control to lose the selected style, got %q", current)
	}
	if current != styles.ButtonCurrent.Render(label) {
		t.Fatalf("expected current-state style %q, got %q", styles.ButtonCurrent.Render(label), current)
	}

	disabled := m.renderControl(menu.Control{ID: "settings:sync", Label: label, Disabled: true}, false)
	if disabled != styles.ButtonDisabled.Render(label) {
		t.Fatalf("expected disabled style, got %q", disabled)
	}
	selected := m.renderControl(menu.Control{ID: "category:0", Label: label, Selected: true}, false)
	if selected != styles.ButtonSelected.Render(label) {
		t.Fatalf("expected selected style, got %q", selected)
	}
	if current == disabled || current == selected {
		t.Fatalf("expected three distinct renderings")
	}
}
