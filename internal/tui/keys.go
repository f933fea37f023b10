package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit        key.Binding
	sync        key.Binding
	clearAll    key.Binding
	clearStream key.Binding
	refresh     key.Binding
	info        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:        key.NewBinding(key.WithKeys("s")),
	clearAll:    key.NewBinding(key.WithKeys("c")),
	clearStream: key.NewBinding(key.WithKeys("1", "2", "3", "4")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	info:        key.NewBinding(key.WithKeys("i")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
