package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Primary      key.Binding
	LockSubject  key.Binding
	LockForm     key.Binding
	LockAudience key.Binding
	Theme        key.Binding
	Copy         key.Binding
	Support      key.Binding
	Profile      key.Binding
	About        key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Primary: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "gamble"),
		),
		LockSubject: key.NewBinding(
			key.WithKeys("1", "s"),
			key.WithHelp("1/s", "lock subject"),
		),
		LockForm: key.NewBinding(
			key.WithKeys("2", "f"),
			key.WithHelp("2/f", "lock form"),
		),
		LockAudience: key.NewBinding(
			key.WithKeys("3", "a"),
			key.WithHelp("3/a", "lock audience"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		Support: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "throw a coin"),
		),
		Profile: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "author"),
		),
		About: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.LockSubject, k.LockForm, k.LockAudience, k.Theme, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.LockSubject, k.LockForm, k.LockAudience},
		{k.Theme, k.Copy, k.Support, k.Profile},
		{k.About, k.Quit},
	}
}

// setLockEnabled shows or hides the lock bindings. Locking does nothing
// before the first generation, so the hints stay hidden until then.
func (k *keyMap) setLockEnabled(enabled bool) {
	k.LockSubject.SetEnabled(enabled)
	k.LockForm.SetEnabled(enabled)
	k.LockAudience.SetEnabled(enabled)
}
