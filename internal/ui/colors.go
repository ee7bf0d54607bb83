package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	neonOrange = "#FF8225"
	ink        = "#000000"
	chrome     = "#E5E5E5"
	dim        = "#8A8A8A"
	alert      = "#FF3355"
)

var styles = NewPalette(neonOrange, ink, chrome, dim, alert)

// struct Palette is the cyberpunk stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	banner   lipgloss.Style
	title    lipgloss.Style
	accent   lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
	panel    lipgloss.Style
	sidebar  lipgloss.Style
	current  lipgloss.Style
	cursor   lipgloss.Style
	badge    lipgloss.Style
	badgeSel lipgloss.Style
}

func NewPalette(accent, background, fg, faint, danger string) *Palette {
	return &Palette{
		banner: NewBold(background).Background(lipgloss.Color(accent)).Padding(0, 2),
		title:  NewBold(fg),
		accent: NewBold(accent),
		text:   NewStyle(fg),
		muted:  NewStyle(faint),
		err:    NewBold(danger),
		help:   NewEm(faint),
		panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(accent)).
			PaddingLeft(1),
		current:  NewBold(accent),
		cursor:   NewStyle(fg).Background(lipgloss.Color("#2A2A2A")),
		badge:    NewStyle(faint),
		badgeSel: NewBold(background).Background(lipgloss.Color(accent)),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
