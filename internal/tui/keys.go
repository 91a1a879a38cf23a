package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Next    key.Binding
	Back    key.Binding
	Submit  key.Binding
	Focus   key.Binding
	Unfocus key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Delete  key.Binding
	Toggle  key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Next:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next step")),
		Back:    key.NewBinding(key.WithKeys("ctrl+b", "esc"), key.WithHelp("esc", "back")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Unfocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev option")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Delete:  key.NewBinding(key.WithKeys("delete", "backspace", "ctrl+d"), key.WithHelp("del", "remove")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Close:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// shortHelp adapts the bindings shown in the footer to the current screen.
type shortHelp []key.Binding

func (h shortHelp) ShortHelp() []key.Binding  { return h }
func (h shortHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
