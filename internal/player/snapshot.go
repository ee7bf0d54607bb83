package player

import "github.com/desertthunder/neonx/internal/models"

// Snapshot is the read-only form of [State] handed to presentation layers.
type Snapshot struct {
	Track           *models.Track `json:"track"`
	Playing         bool          `json:"playing"`
	Elapsed         int           `json:"elapsed"`
	Duration        int           `json:"duration"`
	ElapsedText     string        `json:"elapsed_text"`
	DurationText    string        `json:"duration_text"`
	Volume          int           `json:"volume"`
	EffectiveVolume int           `json:"effective_volume"`
	Muted           bool          `json:"muted"`
	Shuffle         bool          `json:"shuffle"`
	Repeat          string        `json:"repeat"`
	Liked           bool          `json:"liked"`
}

// Snapshot copies s into its presentation form.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Playing:         s.Playing,
		Elapsed:         s.Elapsed,
		Duration:        s.Duration,
		ElapsedText:     FormatTime(s.Elapsed),
		DurationText:    FormatTime(s.Duration),
		Volume:          s.Volume,
		EffectiveVolume: s.EffectiveVolume(),
		Muted:           s.Muted,
		Shuffle:         s.Shuffle,
		Repeat:          s.Repeat.String(),
		Liked:           s.Liked,
	}
	if s.Track != nil {
		t := *s.Track
		snap.Track = &t
	}
	return snap
}
