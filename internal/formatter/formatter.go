// package formatter provides functions to export the track catalog to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/neonx/internal/embed"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/shared"
)

// Format names an export format.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "md"
	Text     Format = "txt"
	JSON     Format = "json"
)

// ParseFormat accepts a format name or common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "md", "markdown":
		return Markdown, nil
	case "txt", "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, s)
	}
}

// TotalRuntime renders the summed catalog length as "m:ss".
func TotalRuntime(c *models.Catalog) string {
	return player.FormatTime(c.TotalSeconds())
}

// ExportToCSV converts the catalog to CSV with columns: ID, Title, Artist, Duration, Seconds, VideoID
func ExportToCSV(c *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Duration", "Seconds", "VideoID"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range c.Tracks() {
		record := []string{
			strconv.Itoa(track.ID),
			track.Title,
			track.Artist,
			track.Duration,
			strconv.Itoa(track.Seconds()),
			embed.VideoID(track),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the catalog to a Markdown document headed by title
func ExportToMarkdown(c *models.Catalog, title string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "**Tracks**: %d\n", c.Len())
	fmt.Fprintf(&buf, "**Total**: %s\n\n", TotalRuntime(c))

	buf.WriteString("## Tracks\n\n")
	for i, track := range c.Tracks() {
		fmt.Fprintf(&buf, "%d. %s - %s [%s](%s)\n", i+1, track.Artist, track.Title, track.Duration, embed.WatchURL(track))
	}

	return buf.Bytes(), nil
}

// ExportToText converts the catalog to plain text with zero-padded indices
func ExportToText(c *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Tracks: %d (%s total)\n\n", c.Len(), TotalRuntime(c))

	for i, track := range c.Tracks() {
		fmt.Fprintf(&buf, "%02d. %s - %s [%s]\n", i+1, track.Artist, track.Title, track.Duration)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts the catalog to an indented JSON array of tracks
func ExportToJSON(c *models.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c.Tracks(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Export renders the catalog in the given format.
func Export(c *models.Catalog, f Format) ([]byte, error) {
	switch f {
	case CSV:
		return ExportToCSV(c)
	case Markdown:
		return ExportToMarkdown(c, "Neural Playlist")
	case Text:
		return ExportToText(c)
	case JSON:
		return ExportToJSON(c)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, f)
	}
}

// WriteExport renders the catalog and writes it to path.
//
// Defaults to catalog.{format} as the filename.
func WriteExport(c *models.Catalog, f Format, path string) (string, error) {
	if path == "" {
		path = "catalog." + string(f)
	}

	data, err := Export(c, f)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
