// package models defines the data model for the neonx player
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Track is a single playable catalog entry.
//
// Duration is kept as the display string ("m:ss"); use [Track.Seconds] for arithmetic.
type Track struct {
	ID          int    `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Artist      string `json:"artist" toml:"artist"`
	Duration    string `json:"duration" toml:"duration"`
	VideoID     string `json:"video_id,omitempty" toml:"video_id"`
	Description string `json:"description,omitempty" toml:"description"`
}

// Seconds returns the track duration in whole seconds, or 0 when Duration is malformed.
func (t Track) Seconds() int {
	s, err := ParseDuration(t.Duration)
	if err != nil {
		return 0
	}
	return s
}

// Validate checks that the track can be shown and played.
func (t Track) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("track id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track %d: title is required", t.ID)
	}
	if _, err := ParseDuration(t.Duration); err != nil {
		return fmt.Errorf("track %d: %w", t.ID, err)
	}
	return nil
}

// ParseDuration converts a "m:ss" display string into seconds.
func ParseDuration(s string) (int, error) {
	mins, secs, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: expected m:ss", s)
	}

	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("invalid duration %q: bad minutes", s)
	}

	sec, err := strconv.Atoi(secs)
	if err != nil || sec < 0 || sec > 59 || len(secs) != 2 {
		return 0, fmt.Errorf("invalid duration %q: bad seconds", s)
	}

	return m*60 + sec, nil
}

// CatalogEntry is a [Track] as persisted in the catalog table.
type CatalogEntry struct {
	Track
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
