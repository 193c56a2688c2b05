package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/research-console/internal/backend"
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/rnd"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSender struct {
	sent []rnd.Request
	err  error
}

func (f *fakeSender) Send(req rnd.Request) (string, error) {
	f.sent = append(f.sent, req)
	return "req-1", f.err
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *fakeSender) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	sender := &fakeSender{}
	if opts.Sender == nil {
		opts.Sender = sender
	}
	return NewHarness(NewModel(opts)), sender
}

func pushSnapshot(h *Harness, payload string) {
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSnapshot, Data: []byte(payload)}})
}

func focusedID(h *Harness) string {
	ctrl, _ := h.Model().currentLevel().Current()
	return ctrl.ID
}

const settingsUnsynced = `{"menu":6,"submenu":0,"sync":0}`

func TestViewBeforeFirstSnapshot(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	view := h.View()
	if !strings.Contains(view, "Waiting for the research console") {
		t.Fatalf("expected waiting line, got %q", view)
	}
	if !strings.HasPrefix(view, "research console") {
		t.Fatalf("expected root header, got %q", view)
	}
}

func TestEnterSendsExactlyOneAction(t *testing.T) {
	h, sender := newTestHarness(t, Options{})
	pushSnapshot(h, settingsUnsynced)
	if got := focusedID(h); got != "nav:0:0" {
		t.Fatalf("expected focus on main menu button, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if got := focusedID(h); got != "settings:connect" {
		t.Fatalf("expected focus on connect, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(sender.sent))
	}
	if sender.sent[0].Action != rnd.ActionToggleSync {
		t.Fatalf("expected togglesync, got %q", sender.sent[0].Action)
	}
}

func TestDisabledControlsNeverFocused(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, settingsUnsynced)
	disabled := map[string]bool{"settings:sync": true, "settings:disconnect": true, "nav:6:1": true}
	for i := 0; i < 6; i++ {
		if id := focusedID(h); disabled[id] {
			t.Fatalf("focus landed on disabled control %q", id)
		}
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	for _, ctrl := range h.Model().currentLevel().Controls {
		if ctrl.Disabled {
			t.Fatalf("expected only enabled controls in focus order, found %q", ctrl.ID)
		}
	}
}

func TestEscapeOnSubmenuRequestsParent(t *testing.T) {
	h, sender := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":4,"submenu":2,"linked_lathe":1}`)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if len(sender.sent) != 1 {
		t.Fatalf("expected one nav request, got %d", len(sender.sent))
	}
	req := sender.sent[0]
	if req.Action != rnd.ActionNav {
		t.Fatalf("expected nav action, got %q", req.Action)
	}
	if menu, _ := req.Param("menu"); menu != 4 {
		t.Fatalf("expected menu 4, got %v", menu)
	}
	if sub, _ := req.Param("submenu"); sub != 0 {
		t.Fatalf("expected submenu 0, got %v", sub)
	}
	if h.Quit() {
		t.Fatalf("expected escape on a submenu not to quit")
	}
}

func TestEscapeOnMenuReturnsToMain(t *testing.T) {
	h, sender := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":1,"submenu":0}`)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if len(sender.sent) != 1 {
		t.Fatalf("expected one nav request, got %d", len(sender.sent))
	}
	if menu, _ := sender.sent[0].Param("menu"); menu != 0 {
		t.Fatalf("expected main menu, got %v", menu)
	}
}

func TestEscapeOnMainQuits(t *testing.T) {
	h, sender := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":0,"submenu":0}`)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() {
		t.Fatalf("expected quit from main menu")
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no request on quit, got %d", len(sender.sent))
	}
}

func TestFocusResetsOnNavChange(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, settingsUnsynced)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	pushSnapshot(h, `{"menu":0,"submenu":0}`)
	if cursor := h.Model().currentLevel().Cursor; cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", cursor)
	}
	if screen := h.Model().currentLevel().Screen; screen != "main" {
		t.Fatalf("expected main screen level, got %q", screen)
	}
}

func TestFocusFollowsControlAcrossSnapshots(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":4,"submenu":0,"linked_lathe":1,"categories":["Alpha","Beta","Gamma"]}`)
	if !h.Model().currentLevel().Focus("category:Gamma") {
		t.Fatalf("expected gamma category control")
	}
	pushSnapshot(h, `{"menu":4,"submenu":0,"linked_lathe":1,"categories":["Gamma"]}`)
	if got := focusedID(h); got != "category:Gamma" {
		t.Fatalf("expected focus to follow gamma, got %q", got)
	}
}

func TestActionErrorShowsStatusLine(t *testing.T) {
	sender := &fakeSender{err: errors.New("publish failed")}
	h, _ := newTestHarness(t, Options{Sender: sender})
	pushSnapshot(h, settingsUnsynced)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(h.View(), "Error: publish failed") {
		t.Fatalf("expected error status line, got %q", h.View())
	}
}

func TestMalformedSnapshotKeepsPreviousView(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":0,"submenu":0,"tech_levels":[{"name":"Materials","level":3}]}`)
	pushSnapshot(h, `[1,2,3]`)
	view := h.View()
	if !strings.Contains(view, "Materials: 3") {
		t.Fatalf("expected previous snapshot to stay on screen, got %q", view)
	}
	if !strings.Contains(view, "Backend: ignored snapshot") {
		t.Fatalf("expected backend warning, got %q", view)
	}
	pushSnapshot(h, `{"menu":0,"submenu":0}`)
	if strings.Contains(h.View(), "Backend:") {
		t.Fatalf("expected warning cleared by the next good snapshot")
	}
}

func TestMalformedSectionStillChangesScreen(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	pushSnapshot(h, `{"menu":0,"submenu":0}`)
	pushSnapshot(h, `{"menu":6,"submenu":0,"sync":1,"tech_levels":{"bad":true}}`)
	view := h.View()
	if !strings.Contains(view, "Sync Database with Network") {
		t.Fatalf("expected settings screen despite a bad section, got %q", view)
	}
	if !strings.Contains(view, "Backend: ignored malformed fields: tech_levels") {
		t.Fatalf("expected skipped field warning, got %q", view)
	}
}

func TestBackendErrorShowsWarning(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindConnection, Err: errors.New("no responders")}})
	if !strings.Contains(h.View(), "Backend: no responders") {
		t.Fatalf("expected backend warning, got %q", h.View())
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 40})
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if h.Model().width != 40 {
		t.Fatalf("expected fixed width 40, got %d", h.Model().width)
	}
	if h.Model().height != 30 {
		t.Fatalf("expected height 30, got %d", h.Model().height)
	}
}
