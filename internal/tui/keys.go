package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Grid    key.Binding
	Center  key.Binding
	Filter  key.Binding
	Layer   key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "pan")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "pan")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "pan")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan")),
		Grid:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Center:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "recenter")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Layer:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "layer")),
		Close:   key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close detail")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Grid, k.Center, k.Filter, k.Layer, k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Center},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grid, k.Filter, k.Layer},
		{k.Close, k.Quit},
	}
}
