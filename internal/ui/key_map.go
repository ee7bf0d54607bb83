package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	play    key.Binding
	back    key.Binding
	forward key.Binding
	volUp   key.Binding
	volDown key.Binding
	mute    key.Binding
	shuffle key.Binding
	repeat  key.Binding
	like    key.Binding
	open    key.Binding
	variant key.Binding
	help    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play track")),
		play:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		back:    key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←", "-10s")),
		forward: key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→", "+10s")),
		volUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "vol up")),
		volDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "vol down")),
		mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		repeat:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open video")),
		variant: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "layout")),
		help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.play, k.back, k.forward, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.play},
		{k.back, k.forward, k.volUp, k.volDown},
		{k.mute, k.shuffle, k.repeat, k.like},
		{k.open, k.variant, k.help, k.quit},
	}
}
