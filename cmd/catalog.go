package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/neonx/internal/embed"
	"github.com/desertthunder/neonx/internal/formatter"
	"github.com/urfave/cli/v3"
)

// CatalogList prints the playlist in order.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.loadCatalog(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(catalog.Tracks(), cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("NEURAL PLAYLIST · %d tracks · %s", catalog.Len(), formatter.TotalRuntime(catalog)))
	for i, t := range catalog.Tracks() {
		if err := r.writePlain("%02d. %-22s %-20s %5s  %s\n", i+1, t.Title, t.Artist, t.Duration, embed.VideoID(t)); err != nil {
			return err
		}
	}
	return nil
}

// CatalogExport writes the playlist to a file in the requested format.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog, err := r.loadCatalog(cmd)
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(catalog, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("catalog exported", "format", format, "path", path, "tracks", catalog.Len())
	return r.writePlain("✓ Exported %d tracks to %s\n", catalog.Len(), path)
}
