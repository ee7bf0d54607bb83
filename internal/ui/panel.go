package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/neonx/internal/embed"
	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/shared"
)

// Panel renders the player half of the screen from a [player.State].
//
// Implementations hold no playback state of their own.
type Panel interface {
	Name() string
	Render(s player.State, width int) string
}

var panels = map[string]Panel{
	"embed":      embedPanel{},
	"compact":    compactPanel{},
	"horizontal": horizontalPanel{},
}

// panelOrder is the order the variant key walks through.
var panelOrder = []string{"embed", "compact", "horizontal"}

// PanelFor returns the panel variant registered under name.
func PanelFor(name string) (Panel, error) {
	p, ok := panels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", shared.ErrUnknownVariant, name, strings.Join(PanelNames(), ", "))
	}
	return p, nil
}

// PanelNames lists the registered variants.
func PanelNames() []string {
	names := make([]string, 0, len(panels))
	for name := range panels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nextPanel(current Panel) Panel {
	for i, name := range panelOrder {
		if name == current.Name() {
			return panels[panelOrder[(i+1)%len(panelOrder)]]
		}
	}
	return panels[panelOrder[0]]
}

// embedPanel mirrors the video player: embed source, description and overlay controls.
type embedPanel struct{}

func (embedPanel) Name() string { return "embed" }

func (embedPanel) Render(s player.State, width int) string {
	if s.Track == nil {
		return placeholder(width)
	}
	t := *s.Track

	video := styles.panel.Width(max(width-4, 10)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.accent.Render("▶ YOUTUBE EMBED"),
			styles.muted.Render(truncate(embed.EmbedURL(t, s.Playing, s.Muted), width-8)),
			"",
			styles.title.Render(t.Title),
		),
	)

	body := []string{
		header("NEURAL YOUTUBE PLAYER", s.Playing),
		"",
		video,
		"",
		styles.title.Render(t.Title) + "  " + likeGlyph(s.Liked),
		styles.muted.Render(t.Artist),
		"",
		lipgloss.NewStyle().Width(max(width-2, 10)).Render(styles.text.Render(embed.Description(t))),
		"",
		progressLine(s, max(width-2, 10)),
		controls(s),
		volumeLine(s, min(width/2, 30)),
	}
	return strings.Join(body, "\n")
}

// compactPanel mirrors the small card player: artwork, progress bar and status lights.
type compactPanel struct{}

func (compactPanel) Name() string { return "compact" }

func (compactPanel) Render(s player.State, width int) string {
	if s.Track == nil {
		return placeholder(width)
	}
	t := *s.Track
	barWidth := max(min(width-4, 48), 10)

	art := styles.panel.Width(barWidth).Align(lipgloss.Center).Render("\n" + styles.accent.Render("♪") + "\n")

	body := []string{
		header("NEURAL PLAYER", s.Playing) + styles.muted.Render("  v2.077"),
		"",
		art,
		"",
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, styles.title.Render(t.Title)),
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, styles.muted.Render(t.Artist)),
		"",
		progressLine(s, barWidth),
		"",
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, controls(s)),
		volumeLine(s, barWidth-12),
		"",
		statusLights(s),
	}
	return strings.Join(body, "\n")
}

// horizontalPanel lays track info, progress and controls out in a wide strip.
type horizontalPanel struct{}

func (horizontalPanel) Name() string { return "horizontal" }

func (horizontalPanel) Render(s player.State, width int) string {
	if s.Track == nil {
		return placeholder(width)
	}
	t := *s.Track

	info := lipgloss.JoinVertical(lipgloss.Left,
		styles.title.Render(t.Title)+"  "+likeGlyph(s.Liked),
		styles.muted.Render(t.Artist),
	)
	right := lipgloss.JoinVertical(lipgloss.Right, controls(s), volumeLine(s, 12))
	gap := max(width-lipgloss.Width(info)-lipgloss.Width(right)-2, 2)

	body := []string{
		header("NEURAL PLAYER", s.Playing),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, info, strings.Repeat(" ", gap), right),
		"",
		progressLine(s, max(width-2, 10)),
	}
	return strings.Join(body, "\n")
}

func placeholder(width int) string {
	box := styles.panel.Width(max(width-4, 10)).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			styles.accent.Render("NO TRACK SELECTED"),
			styles.muted.Render("choose a track from the playlist"),
		),
	)
	return header("NEURAL PLAYER", false) + "\n\n" + box
}

func header(name string, playing bool) string {
	dot := styles.muted.Render("○")
	if playing {
		dot = styles.accent.Render("●")
	}
	return dot + " " + styles.accent.Render(name)
}

func likeGlyph(liked bool) string {
	if liked {
		return styles.accent.Render("♥")
	}
	return styles.muted.Render("♡")
}

// controls renders shuffle, skip, play/pause, skip and repeat with active ones highlighted.
func controls(s player.State) string {
	toggle := func(on bool, glyph string) string {
		if on {
			return styles.accent.Render(glyph)
		}
		return styles.muted.Render(glyph)
	}

	play := "▶"
	if s.Playing {
		play = "⏸"
	}

	repeat := "↻"
	if s.Repeat == player.RepeatOne {
		repeat = "↻1"
	}

	return strings.Join([]string{
		toggle(s.Shuffle, "⤮"),
		styles.text.Render("⏮"),
		styles.badgeSel.Render(" " + play + " "),
		styles.text.Render("⏭"),
		toggle(s.Repeat != player.RepeatOff, repeat),
	}, "  ")
}

func progressLine(s player.State, width int) string {
	elapsed := player.FormatTime(s.Elapsed)
	total := player.FormatTime(s.Duration)
	barWidth := max(width-lipgloss.Width(elapsed)-lipgloss.Width(total)-2, 4)
	return styles.muted.Render(elapsed) + " " + bar(s.Progress(), barWidth) + " " + styles.muted.Render(total)
}

func volumeLine(s player.State, width int) string {
	icon := "🔊"
	if s.Muted || s.Volume == 0 {
		icon = "🔇"
	}
	level := s.EffectiveVolume()
	return icon + " " + bar(float64(level)/player.MaxVolume, max(width, 4)) + " " + styles.muted.Render(fmt.Sprintf("%3d", level))
}

func statusLights(s player.State) string {
	stream := styles.muted.Render("• STREAM")
	if s.Playing {
		stream = styles.accent.Render("• STREAM")
	}
	return stream + "  " + styles.muted.Render("• 320kbps") + "  " + styles.muted.Render("• NEURAL")
}

func bar(fraction float64, width int) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * float64(width))
	return styles.accent.Render(strings.Repeat("━", filled)) + styles.muted.Render(strings.Repeat("─", width-filled))
}
