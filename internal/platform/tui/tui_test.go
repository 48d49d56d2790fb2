package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catzzz/internal/config"
	"github.com/vovakirdan/catzzz/internal/core"
	"github.com/vovakirdan/catzzz/internal/games/catzzz"
)

var t0 = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionGrow},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"q", runes("q"), core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionNone, t0)

	if !h.Frame(t0.Add(50 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left should be held 50ms after the press")
	}

	// A repeat extends the hold.
	h.Press(core.ActionLeft, t0.Add(80*time.Millisecond))
	if !h.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("repeat should keep left held")
	}

	in := h.Frame(t0.Add(180 * time.Millisecond))
	if in.Has(core.ActionLeft) {
		t.Error("left should be released once the last repeat is old")
	}
	if in.Has(core.ActionNone) {
		t.Error("ActionNone should never be held")
	}
}

func TestFitCells(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{"wide terminal", 200, 50, 133, 50},
		{"tall terminal", 80, 100, 80, 30},
		{"larger than the canvas", 1000, 1000, 320, 120},
		{"empty", 0, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := FitCells(320, 240, tc.cols, tc.rows)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("FitCells(320, 240, %d, %d) = (%d, %d), expected (%d, %d)",
					tc.cols, tc.rows, cols, rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestRendererShape(t *testing.T) {
	c := core.NewCanvas(8, 8)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(0, 0, 4, 4), core.ColorSquare)

	out := NewRenderer().Render(c, 8, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, expected 4", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 8 {
			t.Errorf("line %d has %d cells, expected 8", i, n)
		}
	}

	if NewRenderer().Render(c, 0, 4) != "" {
		t.Error("zero columns should render nothing")
	}
}

func TestRendererCachesStyles(t *testing.T) {
	c := core.NewCanvas(4, 4)
	c.Fill(core.ColorDrop)

	r := NewRenderer()
	r.Render(c, 4, 2)
	r.Render(c, 4, 2)
	if len(r.styles) != 1 {
		t.Errorf("styles cached = %d, expected 1 for a single color pair", len(r.styles))
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(core.RGBA(0x12, 0xab, 0xff, 0xff)); got != "#12abff" {
		t.Errorf("hexColor = %q, expected #12abff", got)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	g := catzzz.NewWithConfig(catzzz.VariantCatnap, config.DefaultCatzzzConfig())
	cfg := core.RuntimeConfig{CanvasW: 320, CanvasH: 240, TickRate: 30, Seed: 1, Start: t0}
	g.Reset(cfg)
	return NewModel(g, cfg, 100, 40)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelQuitsWhenGameCloses(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEscape}, t0)
	m = next.(Model)

	next, cmd := m.handleTick(t0.Add(10 * time.Millisecond))
	m = next.(Model)
	if !m.State().Closed() {
		t.Fatalf("phase = %s, expected closed after escape", m.State().Phase)
	}
	if !isQuit(cmd) {
		t.Error("closed game should quit the program")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, t0)
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 32})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, halfBlock) {
		t.Error("view should draw the canvas")
	}
	// 30 picture rows plus HUD and help.
	if n := strings.Count(view, "\n"); n != 31 {
		t.Errorf("view has %d newlines, expected 31", n)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(80, 24)
	if len(m.items) < 2 {
		t.Fatalf("menu items = %d, expected the registered variants", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().ID != m.items[1].ID {
		t.Fatalf("Selected = %v, expected %q", m.Selected(), m.items[1].ID)
	}
	if !isQuit(cmd) {
		t.Error("selecting should close the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(80, 24)
	next, cmd := m.Update(runes("q"))
	m = next.(MenuModel)
	if m.Selected() != nil {
		t.Error("quitting should not select")
	}
	if !isQuit(cmd) {
		t.Error("q should quit the menu")
	}
}
