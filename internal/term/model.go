// Package term renders a chart in the terminal with braille characters and
// lets the user select bars with the mouse or the keyboard.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
)

// Options configure a [Model].
type Options struct {
	// GridColor is the hex color of the horizontal reference lines.
	GridColor string
}

// selection forwards selections to the chart's delegate and remembers the
// last one.
type selection struct {
	chart.Delegate
	picked *int
}

func (s selection) Select(i int) {
	*s.picked = i
	s.Delegate.Select(i)
}

// Model is a bubbletea model showing one chart. The chart is laid out at a
// fixed logical size and scaled to the terminal.
type Model struct {
	chart chart.Chart
	size  graphview.Size
	opts  Options

	width  int
	height int

	keys keyMap
	help help.Model

	picked   *int
	selected int // -1 if no bar is selected
}

// New returns a model for c, laid out at size. Selections still reach the
// chart's delegate.
func New(c chart.Chart, size graphview.Size, opts Options) Model {
	picked := -1
	inner := c.Delegate
	if inner == nil {
		inner = chart.NopDelegate{}
	}
	c.Delegate = selection{Delegate: inner, picked: &picked}
	return Model{
		chart:    c,
		size:     size,
		opts:     opts,
		width:    80,
		height:   24,
		keys:     newKeyMap(),
		help:     help.New(),
		picked:   &picked,
		selected: -1,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Selected returns the index of the selected bar.
func (m Model) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

func (m Model) count() int {
	if m.chart.Source == nil {
		return 0
	}
	return max(m.chart.Source.Count(), 0)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		n := m.count()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.selected < 0 {
				m.selectBar(n - 1)
			} else {
				m.selectBar(max(m.selected-1, 0))
			}
		case key.Matches(msg, m.keys.Right):
			m.selectBar(min(m.selected+1, n-1))
		case key.Matches(msg, m.keys.First):
			m.selectBar(0)
		case key.Matches(msg, m.keys.Last):
			m.selectBar(n - 1)
		case key.Matches(msg, m.keys.Clear):
			m.selected = -1
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	}
	return m, nil
}

// selectBar selects bar i if it exists.
func (m *Model) selectBar(i int) {
	if i < 0 || i >= m.count() {
		return
	}
	m.chart.Delegate.Select(i)
	m.selected = i
}

// click handles a left click on terminal cell (cx, cy).
func (m *Model) click(cx, cy int) {
	w, h := m.plotSize()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	// The center of the cell, in micro-pixels.
	pt := graphview.Pt(float64(cx*2)+1, float64(cy*4)+2)
	pt = pt.Transform(m.toView(w, h).Invert())
	*m.picked = -1
	if m.chart.Touch(pt, m.size) {
		m.selected = *m.picked
	}
}

// plotSize returns the size of the plot area in cells. The bottom two rows
// hold the status line and the key help.
func (m Model) plotSize() (int, int) {
	return max(m.width, 1), max(m.height-2, 1)
}

// toView maps the chart's logical coordinates to micro-pixels of a plot
// area of w×h cells.
func (m Model) toView(w, h int) graphview.Affine {
	if m.size.Empty() {
		return graphview.Scale(0, 0)
	}
	return graphview.Scale(float64(w*2)/m.size.Width, float64(h*4)/m.size.Height)
}

func (m Model) gridColor() string {
	if m.opts.GridColor == "" {
		return "#6B7280"
	}
	return m.opts.GridColor
}

func (m Model) View() string {
	w, h := m.plotSize()
	f := m.chart.Layout(m.size)
	aff := m.toView(w, h)

	cv := newCanvas(w, h)
	cv.fill(f.Area.Transform(aff).Polygon(0.5), layerArea)
	for _, l := range f.HorizontalLines {
		cv.strokeLine(l.Transform(aff), layerGrid)
	}
	var sep color.Color
	for _, s := range f.VerticalLines {
		cv.strokeLine(s.Line.Transform(aff), layerSeparator)
		sep = s.Color
	}
	st := newStyles(f.Fill, sep, m.gridColor())

	// Cell columns of the selected bar.
	selLo, selHi := 0, -1
	if m.selected >= 0 && m.selected < len(f.Bars) {
		b := f.Bars[m.selected]
		selLo = int(math.Floor(b.X0 * aff.N0 / 2))
		selHi = int(math.Ceil(b.X1*aff.N0/2)) - 1
	}

	rows := make([]string, 0, h+2)
	for y := range h {
		var sb strings.Builder
		var run []rune
		var runLayer layer
		var runSel bool
		flush := func() {
			if len(run) == 0 {
				return
			}
			style := st.layers[runLayer]
			if runSel {
				style = style.Inherit(st.selected)
			}
			sb.WriteString(style.Render(string(run)))
			run = run[:0]
		}
		for x := range w {
			l := cv.layers[y][x]
			sel := x >= selLo && x <= selHi
			if l != runLayer || sel != runSel {
				flush()
				runLayer, runSel = l, sel
			}
			run = append(run, cv.cell(x, y))
		}
		flush()
		rows = append(rows, sb.String())
	}
	rows = append(rows, m.statusLine(f), m.help.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(rows, "\n")
}

func (m Model) statusLine(f chart.Frame) string {
	if m.selected < 0 || m.selected >= len(f.Values) {
		return dimStyle.Render(fmt.Sprintf("%s samples, click a bar to select it", humanize.Comma(int64(len(f.Values)))))
	}
	maxValue := m.chart.MaxValue
	if maxValue <= 0 {
		maxValue = 1
	}
	v := f.Values[m.selected]
	return statusStyle.Render(fmt.Sprintf("%s bar: %s (%s%% of max)",
		humanize.Ordinal(m.selected+1),
		humanize.FtoaWithDigits(v, 4),
		humanize.FtoaWithDigits(v/maxValue*100, 1)))
}
