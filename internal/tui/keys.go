package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Undo    key.Binding
	Restart key.Binding
	Flip    key.Binding
	Export  key.Binding
	Import  key.Binding
	Move    key.Binding
	Resign  key.Binding
	Draw    key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick up/drop")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Flip:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flip board")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pgn")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import pgn")),
		Move:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "type a move")),
		Resign:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "resign")),
		Draw:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "agree draw")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Undo, k.Restart, k.Flip, k.Move, k.Export, k.Import, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Cancel},
		{k.Undo, k.Restart, k.Flip, k.Move, k.Resign, k.Draw},
		{k.Export, k.Import, k.Quit},
	}
}
