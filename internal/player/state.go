package player

import (
	"fmt"
	"strings"

	"github.com/desertthunder/neonx/internal/models"
)

const (
	// SkipStep is the number of seconds moved by [Transport.SkipBack] and [Transport.SkipForward].
	SkipStep = 10
	// DefaultVolume is the volume a new [Transport] starts with.
	DefaultVolume = 75
	MaxVolume     = 100
)

// RepeatMode is one of off, one or all.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatOne
	RepeatAll
)

// repeatCycle is the fixed order walked by [RepeatMode.Next].
var repeatCycle = [...]RepeatMode{RepeatOff, RepeatOne, RepeatAll}

// Next returns the mode after m in the off -> one -> all cycle.
func (m RepeatMode) Next() RepeatMode {
	for i, mode := range repeatCycle {
		if mode == m {
			return repeatCycle[(i+1)%len(repeatCycle)]
		}
	}
	return RepeatOff
}

func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "off"
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseRepeatMode is the inverse of [RepeatMode.String]. An empty string is [RepeatOff].
func ParseRepeatMode(s string) (RepeatMode, error) {
	if s == "" {
		return RepeatOff, nil
	}
	for _, mode := range repeatCycle {
		if strings.EqualFold(s, mode.String()) {
			return mode, nil
		}
	}
	return RepeatOff, fmt.Errorf("unknown repeat mode %q", s)
}

// Selection is the chosen track and the play/pause flag.
//
// A nil Track means nothing has been chosen yet.
type Selection struct {
	Track   *models.Track
	Playing bool
}

// SelectTrack makes t the selection and starts playing it.
//
// The track is not checked against any catalog.
func (s *Selection) SelectTrack(t models.Track) {
	s.Track = &t
	s.Playing = true
}

func (s *Selection) TogglePlayPause() {
	s.Playing = !s.Playing
}

// IsSelected reports whether the track with the given id is the current selection.
func (s Selection) IsSelected(id int) bool {
	return s.Track != nil && s.Track.ID == id
}

// IsPlaying reports whether the track with the given id is selected and playing.
func (s Selection) IsPlaying(id int) bool {
	return s.IsSelected(id) && s.Playing
}

// Transport holds the per-player controls.
//
// Elapsed stays within [0, Duration] and Volume within [0, MaxVolume].
// Muted is independent of Volume.
type Transport struct {
	Elapsed  int
	Duration int
	Volume   int
	Muted    bool
	Shuffle  bool
	Repeat   RepeatMode
	Liked    bool
}

// NewTransport returns a transport at [DefaultVolume] with every flag off.
func NewTransport() Transport {
	return Transport{Volume: DefaultVolume}
}

func (t *Transport) ToggleMute() {
	t.Muted = !t.Muted
}

// SetVolume stores v clamped to [0, MaxVolume] and unmutes.
func (t *Transport) SetVolume(v int) {
	t.Volume = clamp(v, 0, MaxVolume)
	t.Muted = false
}

// EffectiveVolume is the audible level: 0 while muted, Volume otherwise.
func (t Transport) EffectiveVolume() int {
	if t.Muted {
		return 0
	}
	return t.Volume
}

// ToggleShuffle flips the shuffle flag. Playback order is not affected.
func (t *Transport) ToggleShuffle() {
	t.Shuffle = !t.Shuffle
}

func (t *Transport) CycleRepeat() {
	t.Repeat = t.Repeat.Next()
}

func (t *Transport) ToggleLike() {
	t.Liked = !t.Liked
}

func (t *Transport) SkipBack() {
	t.Seek(t.Elapsed - SkipStep)
}

func (t *Transport) SkipForward() {
	t.Seek(t.Elapsed + SkipStep)
}

// Seek moves the elapsed time to s, clamped to [0, Duration].
func (t *Transport) Seek(s int) {
	t.Elapsed = clamp(s, 0, t.Duration)
}

// Load points the transport at a track of the given length and rewinds it.
func (t *Transport) Load(duration int) {
	t.Duration = max(duration, 0)
	t.Elapsed = 0
}

// Tick advances one second. It returns true when the track had already
// reached its end, in which case the elapsed time is rewound to 0 instead.
func (t *Transport) Tick() bool {
	if t.Elapsed >= t.Duration {
		t.Elapsed = 0
		return true
	}
	t.Elapsed++
	return false
}

// Progress returns the elapsed fraction of the track in [0, 1].
func (t Transport) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// State is the full view state for one player.
type State struct {
	Selection
	Transport
}

// NewState returns a paused state with track selected, or nothing selected when track is nil.
func NewState(track *models.Track) State {
	s := State{Transport: NewTransport()}
	if track != nil {
		t := *track
		s.Track = &t
		s.Load(t.Seconds())
	}
	return s
}

// FormatTime renders whole seconds as "m:ss". Negative input renders as "0:00".
func FormatTime(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
