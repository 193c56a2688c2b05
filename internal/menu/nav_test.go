package menu

import (
	"testing"

	"github.com/atomicstack/research-console/internal/rnd"
)

func navParams(t *testing.T, req rnd.Request) (int, int) {
	t.Helper()
	if req.Action != rnd.ActionNav {
		t.Fatalf("expected nav action, got %s", req.Action)
	}
	m, ok := req.Params["menu"].(int)
	if !ok {
		t.Fatalf("expected int menu param, got %#v", req.Params["menu"])
	}
	s, ok := req.Params["submenu"].(int)
	if !ok {
		t.Fatalf("expected int submenu param, got %#v", req.Params["submenu"])
	}
	return m, s
}

func TestNavButtonOverrides(t *testing.T) {
	current := rnd.Nav{Menu: 4, Submenu: 2}
	cases := []struct {
		name     string
		button   NavButton
		wantMenu int
		wantSub  int
	}{
		{"menu only keeps submenu", NavToMenu("x", 5), 5, 2},
		{"submenu only keeps menu", NavToSubmenu("x", 0), 4, 0},
		{"both replaced", NavTo("x", 6, 1), 6, 1},
		{"neither reproduces current", NavButton{Label: "x"}, 4, 2},
	}
	for _, tc := range cases {
		m, s := navParams(t, tc.button.Request(current))
		if m != tc.wantMenu || s != tc.wantSub {
			t.Fatalf("%s: expected (%d,%d), got (%d,%d)", tc.name, tc.wantMenu, tc.wantSub, m, s)
		}
	}
}

func TestNavButtonControlCarriesDisabled(t *testing.T) {
	ctrl := NavTo("Disk Operations", 2, 0).DisabledWhen(true).Control(rnd.Nav{})
	if !ctrl.Disabled {
		t.Fatalf("expected disabled control")
	}
	if ctrl.ID != "nav:2:0" {
		t.Fatalf("expected id nav:2:0, got %s", ctrl.ID)
	}
}

func TestParent(t *testing.T) {
	cases := []struct {
		current rnd.Nav
		want    rnd.Nav
		ok      bool
	}{
		{rnd.Nav{Menu: 4, Submenu: 2}, rnd.Nav{Menu: 4}, true},
		{rnd.Nav{Menu: 6}, rnd.Nav{}, true},
		{rnd.Nav{}, rnd.Nav{}, false},
	}
	for _, tc := range cases {
		got, ok := Parent(tc.current)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parent of %+v: expected %+v/%v, got %+v/%v", tc.current, tc.want, tc.ok, got, ok)
		}
	}
}
