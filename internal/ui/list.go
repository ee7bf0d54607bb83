package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/player"
)

var (
	_ list.Item         = trackItem{}
	_ list.ItemDelegate = trackDelegate{}
)

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track    models.Track
	position int
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string { return i.track.Artist }

// trackDelegate renders sidebar rows against the live selection.
type trackDelegate struct {
	selection func() player.Selection
}

func (d trackDelegate) Height() int                             { return 2 }
func (d trackDelegate) Spacing() int                            { return 1 }
func (d trackDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d trackDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(trackItem)
	if !ok {
		return
	}

	sel := d.selection()
	current := sel.IsSelected(it.track.ID)
	width := max(m.Width()-2, 20)

	var badge string
	switch {
	case sel.IsPlaying(it.track.ID):
		badge = styles.accent.Render("▮▮▮")
	case current:
		badge = styles.badgeSel.Render(fmt.Sprintf(" %02d", it.position+1))
	default:
		badge = styles.badge.Render(fmt.Sprintf(" %02d", it.position+1))
	}

	edge := " "
	titleStyle := styles.text
	if current {
		edge = styles.current.Render("┃")
		titleStyle = styles.current
	}

	duration := styles.muted.Render("[" + it.track.Duration + "]")
	titleWidth := width - lipgloss.Width(badge) - lipgloss.Width(duration) - 3
	title := titleStyle.Render(truncate(it.track.Title, titleWidth))
	gap := max(width-lipgloss.Width(edge)-lipgloss.Width(badge)-lipgloss.Width(title)-lipgloss.Width(duration)-2, 1)

	line1 := edge + badge + " " + title + strings.Repeat(" ", gap) + duration
	line2 := edge + strings.Repeat(" ", lipgloss.Width(badge)+1) + styles.muted.Render(truncate(it.track.Artist, titleWidth))

	if index == m.Index() {
		line1 = styles.cursor.Render(line1)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// newSidebar builds the playlist list for the catalog.
func newSidebar(catalog *models.Catalog, selection func() player.Selection) list.Model {
	items := make([]list.Item, catalog.Len())
	for i, t := range catalog.Tracks() {
		items[i] = trackItem{track: t, position: i}
	}

	l := list.New(items, trackDelegate{selection: selection}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.DisableQuitKeybindings()
	return l
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
