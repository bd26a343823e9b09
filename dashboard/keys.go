package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the dashboard's key bindings.
type KeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap binds ctrl+u to refresh and ctrl+q (or ctrl+c) to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "update data")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Help renders the bindings as a single command line.
func (k KeyMap) Help() string {
	parts := make([]string, 0, 2)
	for _, b := range []key.Binding{k.Quit, k.Refresh} {
		h := b.Help()
		parts = append(parts, h.Desc+": "+h.Key)
	}
	return strings.Join(parts, "    ")
}
