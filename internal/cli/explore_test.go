package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	pkgio "github.com/matzehuels/consolidated/pkg/io"
)

func newTestExplorer(t *testing.T) ExplorerModel {
	t.Helper()
	f, err := pkgio.Read(strings.NewReader(orgTOML), pkgio.FormatTOML)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	m, err := consolidated.FromEdges(f.Edges)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return NewExplorerModel(f, m)
}

func press(m ExplorerModel, keys ...string) ExplorerModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ExplorerModel)
	}
	return m
}

func TestExplorerStartsAtRoots(t *testing.T) {
	m := newTestExplorer(t)

	if want := []uint32{1, 5}; !slices.Equal(m.Keys, want) {
		t.Errorf("Keys = %v, want %v", m.Keys, want)
	}
	if key, ok := m.Selected(); !ok || key != 1 {
		t.Errorf("Selected() = %d, %v, want 1, true", key, ok)
	}
}

func TestExplorerNavigation(t *testing.T) {
	m := newTestExplorer(t)

	m = press(m, "j", "j")
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after moving past the end, want 1", m.Cursor)
	}
	m = press(m, "k", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after moving past the start, want 0", m.Cursor)
	}
}

func TestExplorerZoom(t *testing.T) {
	m := newTestExplorer(t)

	m = press(m, "enter")
	if want := []uint32{2, 3, 4}; !slices.Equal(m.Keys, want) {
		t.Fatalf("Keys after zoom = %v, want %v", m.Keys, want)
	}

	// 3 is a leaf: zooming into it does nothing.
	m = press(m, "j", "enter")
	if want := []uint32{2, 3, 4}; !slices.Equal(m.Keys, want) {
		t.Errorf("Keys after zooming into a leaf = %v, want %v", m.Keys, want)
	}

	m = press(m, "backspace")
	if want := []uint32{1, 5}; !slices.Equal(m.Keys, want) {
		t.Errorf("Keys after back = %v, want %v", m.Keys, want)
	}
	if m.Cursor != 0 {
		t.Errorf("Cursor after back = %d, want 0", m.Cursor)
	}

	// Back at the top level is a no-op.
	m = press(m, "backspace")
	if want := []uint32{1, 5}; !slices.Equal(m.Keys, want) {
		t.Errorf("Keys after extra back = %v, want %v", m.Keys, want)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := newTestExplorer(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestExplorerView(t *testing.T) {
	m := newTestExplorer(t)

	view := m.View()
	for _, want := range []string{"root", "3 descendants", "eng", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m = press(m, "enter")
	if view := m.View(); !strings.Contains(view, "root") {
		t.Errorf("View() breadcrumb missing root:\n%s", view)
	}
}

func TestExplorerEmpty(t *testing.T) {
	m := NewExplorerModel(&pkgio.Forest{}, &consolidated.Map[uint32]{})

	if _, ok := m.Selected(); ok {
		t.Error("Selected() ok on an empty explorer")
	}
	if view := m.View(); !strings.Contains(view, "No nodes") {
		t.Errorf("View() = %q, want it to say there are no nodes", view)
	}
	m = press(m, "enter", "j", "backspace")
	if len(m.Keys) != 0 {
		t.Errorf("Keys = %v, want none", m.Keys)
	}
}
