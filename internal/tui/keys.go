package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newNote   key.Binding
	search    key.Binding
	delete    key.Binding
	history   key.Binding
	copy      key.Binding
	summarize key.Binding
	formal    key.Binding
	concise   key.Binding
	ideas     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	search:    key.NewBinding(key.WithKeys("/")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	history:   key.NewBinding(key.WithKeys("H")),
	copy:      key.NewBinding(key.WithKeys("c")),
	summarize: key.NewBinding(key.WithKeys("1")),
	formal:    key.NewBinding(key.WithKeys("2")),
	concise:   key.NewBinding(key.WithKeys("3")),
	ideas:     key.NewBinding(key.WithKeys("4")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
