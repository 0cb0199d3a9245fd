package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Anchors  []key.Binding
	Quit     key.Binding
}

// anchorKeys maps the number keys to section anchors, in header order.
var anchorKeys = []string{"hero", "about", "skills", "projects", "contact"}

func defaultKeyMap() keyMap {
	km := keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g", "t"), key.WithHelp("t", "back to top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
	for i, anchor := range anchorKeys {
		n := string(rune('1' + i))
		km.Anchors = append(km.Anchors, key.NewBinding(key.WithKeys(n), key.WithHelp(n, anchor)))
	}
	return km
}
