package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Focus    key.Binding
	Format   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Focus:    key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "switch pane")),
		Format:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "outline/html/json")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("space", "page down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// hints lists the bindings shown in the footer.
func (k keyMap) hints() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Format, k.Help, k.Quit}
}

// all lists every binding, in help order.
func (k keyMap) all() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Focus, k.Format, k.PageUp, k.PageDown, k.Help, k.Quit}
}
