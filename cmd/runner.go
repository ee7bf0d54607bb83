package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/repositories"
	"github.com/desertthunder/neonx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the logger used by every command.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// Configure loads the --config file when it exists and applies the configured log level.
//
// A missing file keeps the defaults so "setup config" can create it; a malformed one is an error.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			config, err := shared.LoadConfig(path)
			if err != nil {
				return ctx, fmt.Errorf("%w: %s: %v", shared.ErrInvalidConfig, path, err)
			}
			r.config = config
			r.configPath = path
		} else if cmd.IsSet("config") {
			r.logger.Warn("config file not found, using defaults", "path", path)
		}
	}

	shared.SetLogLevel(r.logger, r.config.LogLevel())
	if cmd.Bool("debug") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	return ctx, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tuiCommand, serveCommand, catalogCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadCatalog resolves the playlist: SQLite when --db is given, then the config override, then the
// built-in tracks.
func (r *Runner) loadCatalog(cmd *cli.Command) (*models.Catalog, error) {
	if path := cmd.String("db"); path != "" {
		return r.loadStoredCatalog(path)
	}
	return r.configuredCatalog()
}

// configuredCatalog is the [[catalog.tracks]] override when present, else the built-in tracks.
func (r *Runner) configuredCatalog() (*models.Catalog, error) {
	if tracks := r.config.Catalog.Tracks; len(tracks) > 0 {
		catalog, err := models.NewCatalog(tracks)
		if err != nil {
			return nil, fmt.Errorf("%w: catalog.tracks: %v", shared.ErrInvalidConfig, err)
		}
		r.logger.Debug("catalog loaded from config", "tracks", catalog.Len())
		return catalog, nil
	}

	return models.DefaultCatalog(), nil
}

func (r *Runner) loadStoredCatalog(path string) (*models.Catalog, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	catalog, err := repositories.LoadCatalog(repositories.NewTrackRepository(db))
	if errors.Is(err, shared.ErrEmptyCatalog) {
		return nil, fmt.Errorf("%w: run 'neonx setup database' to seed %s", err, path)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("catalog loaded from database", "path", path, "tracks", catalog.Len())
	return catalog, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
