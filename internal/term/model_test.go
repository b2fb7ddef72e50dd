package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
)

var referenceValues = chart.Values[float64]{0.1, 0.2, 0.3, 0.5, 0.8, 0.7, 0.8, 0.7, 0.6, 0.5}

func newTestModel(selected *[]int) Model {
	c := chart.Chart{
		Source: referenceValues,
		Delegate: chart.FixedWidth{
			Width:    20,
			OnSelect: func(i int) { *selected = append(*selected, i) },
		},
		MaxValue: 1,
	}
	m := New(c, graphview.Sz(200, 100), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModelClick(t *testing.T) {
	var selected []int
	m := newTestModel(&selected)

	if _, ok := m.Selected(); ok {
		t.Fatal("new model has a selection")
	}

	// Cell (10, 5) is micro-pixel (21, 22), which maps back to (52.5, 55).
	m = update(t, m, click(10, 5))
	if i, ok := m.Selected(); !ok || i != 2 {
		t.Errorf("got selection %d, %v; want 2", i, ok)
	}

	// The status row is not part of the plot.
	m = update(t, m, click(10, 11))
	// Releases and other buttons are ignored.
	m = update(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if i, _ := m.Selected(); i != 2 {
		t.Errorf("selection changed to %d", i)
	}

	m = update(t, m, click(39, 0))
	if i, _ := m.Selected(); i != 9 {
		t.Errorf("got selection %d, want 9", i)
	}
	diff(t, []int{2, 9}, selected)
}

func TestModelKeys(t *testing.T) {
	var selected []int
	m := newTestModel(&selected)

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m = update(t, m, right)
	m = update(t, m, right)
	m = update(t, m, left)
	m = update(t, m, left)
	m = update(t, m, left)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m = update(t, m, right)
	diff(t, []int{0, 1, 0, 0, 0, 9, 9}, selected)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.Selected(); ok {
		t.Error("esc did not clear the selection")
	}
	m = update(t, m, left)
	if i, _ := m.Selected(); i != 9 {
		t.Errorf("left without a selection selected %d, want the last bar", i)
	}
}

func TestModelQuit(t *testing.T) {
	var selected []int
	m := newTestModel(&selected)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModelView(t *testing.T) {
	var selected []int
	m := newTestModel(&selected)

	view := m.View()
	rows := strings.Split(view, "\n")
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}
	if !strings.ContainsRune(view, '⣿') {
		t.Errorf("no filled cells in view:\n%s", view)
	}
	if !strings.Contains(rows[10], "10 samples") {
		t.Errorf("unexpected status line %q", rows[10])
	}

	m = update(t, m, click(10, 5))
	if status := strings.Split(m.View(), "\n")[10]; !strings.Contains(status, "3rd bar: 0.3") {
		t.Errorf("unexpected status line %q", status)
	}
}

func TestModelEmptyChart(t *testing.T) {
	m := New(chart.Chart{}, graphview.Sz(200, 100), Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, click(1, 1))
	if _, ok := m.Selected(); ok {
		t.Error("empty chart has a selection")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}
