package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous bar")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next bar")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first bar")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last bar")),
		Clear: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.First, k.Last, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.First, k.Last}, {k.Clear, k.Quit}}
}
