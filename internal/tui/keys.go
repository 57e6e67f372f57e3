package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Close      key.Binding
	Info       key.Binding
	Theme      key.Binding
	Background key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next gallery")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev gallery")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// galleryKeys and viewerKeys implement help.KeyMap for the two screens.
type galleryKeys struct{ keyMap }

func (k galleryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Open, k.Theme, k.Background, k.Quit}
}

func (k galleryKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type viewerKeys struct{ keyMap }

func (k viewerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Info, k.Close}
}

func (k viewerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
