package main

import (
	"context"
	"os"

	"github.com/desertthunder/neonx/internal/shared"
	"github.com/urfave/cli/v3"
)

const version = "0.3.0"

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "neonx",
		Usage:    "Cyberpunk playlist player for the terminal and the browser",
		Version:  version,
		Flags:    globalFlags(),
		Before:   r.Configure,
		Commands: r.register(),
	}
}
