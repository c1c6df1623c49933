package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggle    key.Binding
	markAll   key.Binding
	unmarkAll key.Binding
	view      key.Binding
	remove    key.Binding
	add       key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		markAll:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done")),
		unmarkAll: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "all undone")),
		view:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "view")),
		remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.toggle, k.add, k.view}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.toggle, k.markAll, k.unmarkAll, k.view, k.remove, k.add}
}
