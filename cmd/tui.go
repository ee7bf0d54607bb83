package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/shared"
	"github.com/desertthunder/neonx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal player.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.loadCatalog(cmd)
	if err != nil {
		return err
	}

	initial, err := r.initialState(catalog, cmd)
	if err != nil {
		return err
	}

	variant := cmd.String("variant")
	if variant == "" {
		variant = r.config.Player.Variant
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	r.SetLogger(fileLogger)

	model, err := ui.NewModel(ui.Options{
		Catalog: catalog,
		Initial: initial,
		Variant: variant,
		Logger:  r.logger,
	})
	if err != nil {
		return err
	}

	r.logger.Info("starting tui", "variant", model.Variant(), "tracks", catalog.Len())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// initialState builds the startup state from --track, --autoplay and the [player] config.
//
// Track 0 selects nothing; an unknown id is an error.
func (r *Runner) initialState(catalog *models.Catalog, cmd *cli.Command) (player.State, error) {
	id := r.config.Player.DefaultTrack
	if cmd.IsSet("track") {
		id = cmd.Int("track")
	}

	var track *models.Track
	if id != 0 {
		t, ok := catalog.Get(id)
		if !ok {
			return player.State{}, fmt.Errorf("%w: default track %d", shared.ErrTrackNotFound, id)
		}
		track = &t
	}

	repeat, err := player.ParseRepeatMode(r.config.Player.Repeat)
	if err != nil {
		return player.State{}, fmt.Errorf("%w: player.repeat: %v", shared.ErrInvalidConfig, err)
	}

	state := player.NewState(track)
	state.SetVolume(r.config.Player.Volume)
	state.Repeat = repeat
	if track != nil && cmd.Bool("autoplay") {
		state = state.Apply(player.TogglePlay())
	}
	return state, nil
}
