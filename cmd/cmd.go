// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "Load the catalog from this SQLite database instead of the built-in tracks",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Log at debug level",
		},
	}
}

// startupFlags override the [player] config for the initial state.
func startupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "track",
			Aliases: []string{"t"},
			Usage:   "ID of the track to select at startup (0 selects nothing)",
		},
		&cli.BoolFlag{
			Name:  "autoplay",
			Usage: "Start playing the selected track immediately",
		},
	}
}

// tuiCommand launches the terminal player.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"play", "ui"},
		Usage:   "Launch the terminal player",
		Flags: append(startupFlags(), &cli.StringFlag{
			Name:  "variant",
			Usage: "Player layout: embed, compact or horizontal",
		}),
		Action: r.TUI,
	}
}

// serveCommand starts the local web player.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the player page with the YouTube embed on localhost",
		Flags: append(startupFlags(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (defaults to server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (defaults to server.port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the page in the system browser once listening",
			},
		),
		Action: r.Serve,
	}
}

// catalogCommand groups read-only catalog operations.
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect and export the playlist",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracks in playlist order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "export",
				Usage: "Export the playlist to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, md, txt or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to catalog.<format>)",
					},
				},
				Action: r.CatalogExport,
			},
		},
	}
}

// setupCommand handles setup operations for the database and config file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the database, run migrations and seed the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Revert the most recent migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:   "config",
				Usage:  "Write an example configuration file",
				Action: r.SetupConfig,
			},
		},
	}
}
