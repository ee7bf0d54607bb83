package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/neonx/internal/embed"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/shared"
)

const (
	banner       = "CYBERPUNK NEURAL YOUTUBE PLAYER"
	volumeStep   = 5
	defaultWidth = 100
	defaultHigh  = 30
)

// Options holds the dependencies of a [Model].
type Options struct {
	Catalog      *models.Catalog
	Initial      player.State
	Variant      string
	Logger       *log.Logger
	TickInterval time.Duration
	// OpenURL hands a watch URL to the system browser. Defaults to [shared.OpenBrowser].
	OpenURL func(string) error
}

// Model represents the TUI application state.
//
// The model owns its [player.State] outright; every change goes through apply.
type Model struct {
	catalog  *models.Catalog
	state    player.State
	panel    Panel
	sidebar  list.Model
	help     help.Model
	keys     keyMap
	logger   *log.Logger
	openURL  func(string) error
	interval time.Duration
	tickGen  int
	status   string
	err      error
	width    int
	height   int
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(opts Options) (*Model, error) {
	if opts.Catalog == nil || opts.Catalog.Len() == 0 {
		return nil, shared.ErrEmptyCatalog
	}
	if opts.Variant == "" {
		opts.Variant = panelOrder[0]
	}
	panel, err := PanelFor(opts.Variant)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.OpenURL == nil {
		opts.OpenURL = shared.OpenBrowser
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = player.TickInterval
	}

	m := &Model{
		catalog:  opts.Catalog,
		state:    opts.Initial,
		panel:    panel,
		help:     help.New(),
		keys:     newKeyMap(),
		logger:   shared.WithLogger(opts.Logger, "ui", panel.Name()),
		openURL:  opts.OpenURL,
		interval: opts.TickInterval,
	}
	m.sidebar = newSidebar(opts.Catalog, func() player.Selection { return m.state.Selection })
	if m.state.Track != nil {
		if pos := opts.Catalog.Position(m.state.Track.ID); pos >= 0 {
			m.sidebar.Select(pos)
		}
	}
	m.resize(defaultWidth, defaultHigh)
	return m, nil
}

// State returns a copy of the current player state.
func (m *Model) State() player.State { return m.state }

// Variant is the name of the active panel.
func (m *Model) Variant() string { return m.panel.Name() }

// Init starts the tick timer when the player opens already playing.
func (m *Model) Init() tea.Cmd {
	if m.state.Playing {
		return m.scheduleTick()
	}
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.tickGen++
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		item, ok := m.sidebar.SelectedItem().(trackItem)
		if !ok {
			return m, nil
		}
		return m, m.apply(player.SelectTrack(item.track))
	case key.Matches(msg, m.keys.play):
		if m.state.Track == nil {
			m.status = "select a track first"
			return m, nil
		}
		return m, m.apply(player.TogglePlay())
	case key.Matches(msg, m.keys.back):
		return m, m.apply(player.SkipBack())
	case key.Matches(msg, m.keys.forward):
		return m, m.apply(player.SkipForward())
	case key.Matches(msg, m.keys.volUp):
		return m, m.apply(player.SetVolume(m.state.Volume + volumeStep))
	case key.Matches(msg, m.keys.volDown):
		return m, m.apply(player.SetVolume(m.state.Volume - volumeStep))
	case key.Matches(msg, m.keys.mute):
		return m, m.apply(player.ToggleMute())
	case key.Matches(msg, m.keys.shuffle):
		return m, m.apply(player.ToggleShuffle())
	case key.Matches(msg, m.keys.repeat):
		return m, m.apply(player.CycleRepeat())
	case key.Matches(msg, m.keys.like):
		return m, m.apply(player.ToggleLike())
	case key.Matches(msg, m.keys.variant):
		m.panel = nextPanel(m.panel)
		m.status = "layout: " + m.panel.Name()
		return m, nil
	case key.Matches(msg, m.keys.open):
		return m, m.openVideo()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgTick:
		gen, _ := msg.data.(int)
		if gen != m.tickGen {
			return m, nil
		}
		return m, m.apply(player.Tick())
	case MsgBrowserOpened:
		data, _ := msg.data.(struct {
			url string
			err error
		})
		if data.err != nil {
			m.err = data.err
			m.logger.Error("open video", "url", data.url, "error", data.err)
			return m, nil
		}
		m.err = nil
		m.status = "opened " + data.url
	}
	return m, nil
}

// apply runs c through the reducer and keeps the tick timer in step with playback.
//
// Each scheduled tick carries the current generation; bumping it orphans any tick in flight.
func (m *Model) apply(c player.Command) tea.Cmd {
	prev := m.state
	m.state = prev.Apply(c)

	if c.Kind != player.CmdTick {
		m.logger.Debug("command applied", "command", c.Kind, "playing", m.state.Playing)
	} else if prev.Playing && !m.state.Playing && prev.Track != nil {
		m.logger.Info("track finished", "track", prev.Track.Title)
	}

	switch {
	case !m.state.Playing:
		if prev.Playing {
			m.tickGen++
		}
		return nil
	case c.Kind == player.CmdTick:
		return m.scheduleTick()
	case !prev.Playing || c.Kind == player.CmdSelectTrack:
		m.tickGen++
		return m.scheduleTick()
	}
	return nil
}

func (m *Model) scheduleTick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg(gen) })
}

func (m *Model) openVideo() tea.Cmd {
	if m.state.Track == nil {
		m.status = "select a track first"
		return nil
	}
	url := embed.WatchURL(*m.state.Track)
	open := m.openURL
	return func() tea.Msg {
		return browserOpenedMsg(url, open(url))
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.sidebar.SetSize(m.sidebarWidth()-2, max(height-10, 6))
}

func (m *Model) sidebarWidth() int {
	return max(m.width*2/5, 28)
}

func (m *Model) panelWidth() int {
	return max(m.width-m.sidebarWidth()-2, 30)
}

// View renders the banner, player panel, playlist sidebar and help.
func (m *Model) View() string {
	top := styles.banner.Render(banner)

	left := lipgloss.NewStyle().Width(m.panelWidth()).Render(m.panel.Render(m.state, m.panelWidth()))
	right := styles.sidebar.Width(m.sidebarWidth()).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return strings.Join([]string{top, "", body, "", m.renderStatus(), m.help.View(m.keys)}, "\n")
}

func (m *Model) renderSidebar() string {
	count := styles.muted.Render(fmt.Sprintf("%d tracks", m.catalog.Len()))
	active := styles.muted.Render("○ IDLE")
	if m.state.Playing {
		active = styles.accent.Render("● ACTIVE")
	}
	total := styles.muted.Render("TOTAL " + player.FormatTime(m.catalog.TotalSeconds()))

	return strings.Join([]string{
		styles.accent.Render("NEURAL PLAYLIST"),
		count + "  " + active,
		"",
		m.sidebar.View(),
		"",
		styles.muted.Render("CYBERPUNK 2077") + "  " + total,
	}, "\n")
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return styles.err.Render("error: " + m.err.Error())
	}
	line := fmt.Sprintf("repeat %s · shuffle %s · volume %d", m.state.Repeat, onOff(m.state.Shuffle), m.state.EffectiveVolume())
	if m.status != "" {
		line = m.status + " · " + line
	}
	return styles.help.Render(line)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
