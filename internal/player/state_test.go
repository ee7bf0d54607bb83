package player

import (
	"testing"

	"github.com/desertthunder/neonx/internal/models"
)

func TestFormatTime(t *testing.T) {
	tt := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{222, "3:42"},
		{600, "10:00"},
		{-3, "0:00"},
	}

	for _, tc := range tt {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatTime(tc.seconds); got != tc.want {
				t.Errorf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
			}
		})
	}
}

func TestRepeatMode(t *testing.T) {
	t.Run("cycles off one all", func(t *testing.T) {
		m := RepeatOff
		want := []RepeatMode{RepeatOne, RepeatAll, RepeatOff}
		for i, w := range want {
			m = m.Next()
			if m != w {
				t.Fatalf("step %d: got %v, want %v", i+1, m, w)
			}
		}
	})

	t.Run("three cycles return to start", func(t *testing.T) {
		for _, start := range repeatCycle {
			tr := Transport{Repeat: start}
			for range 3 {
				tr.CycleRepeat()
			}
			if tr.Repeat != start {
				t.Errorf("from %v: got %v after 3 cycles", start, tr.Repeat)
			}
		}
	})

	t.Run("ParseRepeatMode", func(t *testing.T) {
		for _, mode := range repeatCycle {
			got, err := ParseRepeatMode(mode.String())
			if err != nil || got != mode {
				t.Errorf("ParseRepeatMode(%q) = %v, %v", mode.String(), got, err)
			}
		}
		if got, err := ParseRepeatMode(""); err != nil || got != RepeatOff {
			t.Errorf("empty mode: got %v, %v", got, err)
		}
		if _, err := ParseRepeatMode("forever"); err == nil {
			t.Error("expected error for unknown mode")
		}
	})
}

func TestSelection(t *testing.T) {
	t.Run("SelectTrack selects and plays every catalog track", func(t *testing.T) {
		for _, track := range models.DefaultCatalog().Tracks() {
			var s Selection
			s.SelectTrack(track)
			if s.Track == nil || *s.Track != track {
				t.Errorf("expected %v selected, got %v", track, s.Track)
			}
			if !s.Playing {
				t.Errorf("expected playing after selecting %q", track.Title)
			}
		}
	})

	t.Run("SelectTrack accepts tracks outside the catalog", func(t *testing.T) {
		var s Selection
		s.SelectTrack(models.Track{ID: 999, Title: "Ghost"})
		if !s.IsPlaying(999) {
			t.Error("expected track 999 to be playing")
		}
	})

	t.Run("TogglePlayPause", func(t *testing.T) {
		var s Selection
		s.TogglePlayPause()
		if !s.Playing {
			t.Error("expected playing after first toggle")
		}
		s.TogglePlayPause()
		if s.Playing {
			t.Error("expected paused after second toggle")
		}
	})

	t.Run("IsPlaying requires both selection and playing", func(t *testing.T) {
		var s Selection
		if s.IsSelected(1) || s.IsPlaying(1) {
			t.Error("empty selection should match nothing")
		}

		s.SelectTrack(models.Track{ID: 1})
		s.TogglePlayPause()
		if !s.IsSelected(1) {
			t.Error("expected track 1 selected")
		}
		if s.IsPlaying(1) {
			t.Error("paused track should not be playing")
		}
		if s.IsSelected(2) {
			t.Error("track 2 should not be selected")
		}
	})
}

func TestTransport(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tr := NewTransport()
		if tr.Volume != DefaultVolume || tr.Muted || tr.Shuffle || tr.Liked || tr.Repeat != RepeatOff {
			t.Errorf("unexpected defaults: %+v", tr)
		}
	})

	t.Run("ToggleMute keeps volume", func(t *testing.T) {
		tr := NewTransport()
		tr.SetVolume(40)
		tr.ToggleMute()
		if !tr.Muted || tr.Volume != 40 {
			t.Errorf("expected muted with volume 40, got %+v", tr)
		}
		if tr.EffectiveVolume() != 0 {
			t.Errorf("expected effective volume 0, got %d", tr.EffectiveVolume())
		}
		tr.ToggleMute()
		if tr.Muted || tr.EffectiveVolume() != 40 {
			t.Errorf("expected unmuted at 40, got %+v", tr)
		}
	})

	t.Run("SetVolume unmutes", func(t *testing.T) {
		for _, v := range []int{0, 1, 50, 99, 100} {
			for _, muted := range []bool{true, false} {
				tr := Transport{Muted: muted}
				tr.SetVolume(v)
				if tr.Muted {
					t.Errorf("SetVolume(%d) from muted=%v left transport muted", v, muted)
				}
				if tr.Volume != v {
					t.Errorf("SetVolume(%d) stored %d", v, tr.Volume)
				}
			}
		}
	})

	t.Run("SetVolume clamps", func(t *testing.T) {
		tr := NewTransport()
		tr.SetVolume(150)
		if tr.Volume != MaxVolume {
			t.Errorf("expected %d, got %d", MaxVolume, tr.Volume)
		}
		tr.SetVolume(-20)
		if tr.Volume != 0 {
			t.Errorf("expected 0, got %d", tr.Volume)
		}
	})

	t.Run("ToggleShuffle and ToggleLike", func(t *testing.T) {
		tr := NewTransport()
		tr.ToggleShuffle()
		tr.ToggleLike()
		if !tr.Shuffle || !tr.Liked {
			t.Errorf("expected shuffle and like on, got %+v", tr)
		}
	})

	t.Run("skips stay within bounds", func(t *testing.T) {
		const duration = 208
		for start := 0; start <= duration; start++ {
			fwd := Transport{Duration: duration, Elapsed: start}
			fwd.SkipForward()
			if fwd.Elapsed > duration {
				t.Fatalf("SkipForward from %d went to %d", start, fwd.Elapsed)
			}
			if want := min(start+SkipStep, duration); fwd.Elapsed != want {
				t.Fatalf("SkipForward from %d = %d, want %d", start, fwd.Elapsed, want)
			}

			back := Transport{Duration: duration, Elapsed: start}
			back.SkipBack()
			if back.Elapsed < 0 {
				t.Fatalf("SkipBack from %d went to %d", start, back.Elapsed)
			}
			if want := max(start-SkipStep, 0); back.Elapsed != want {
				t.Fatalf("SkipBack from %d = %d, want %d", start, back.Elapsed, want)
			}
		}
	})

	t.Run("Seek clamps", func(t *testing.T) {
		tr := Transport{Duration: 100}
		tr.Seek(500)
		if tr.Elapsed != 100 {
			t.Errorf("expected 100, got %d", tr.Elapsed)
		}
		tr.Seek(-1)
		if tr.Elapsed != 0 {
			t.Errorf("expected 0, got %d", tr.Elapsed)
		}
	})

	t.Run("Tick rewinds at end", func(t *testing.T) {
		tr := Transport{Duration: 2}
		if tr.Tick() || tr.Elapsed != 1 {
			t.Fatalf("first tick: %+v", tr)
		}
		if tr.Tick() || tr.Elapsed != 2 {
			t.Fatalf("second tick: %+v", tr)
		}
		if !tr.Tick() || tr.Elapsed != 0 {
			t.Fatalf("third tick should end the track: %+v", tr)
		}
	})

	t.Run("Progress", func(t *testing.T) {
		tr := Transport{Duration: 200, Elapsed: 50}
		if got := tr.Progress(); got != 0.25 {
			t.Errorf("expected 0.25, got %v", got)
		}
		if got := (Transport{}).Progress(); got != 0 {
			t.Errorf("expected 0 for empty transport, got %v", got)
		}
	})
}

func TestNewState(t *testing.T) {
	t.Run("with track", func(t *testing.T) {
		track, _ := models.DefaultCatalog().Get(1)
		s := NewState(&track)
		if s.Track == nil || s.Track.ID != 1 {
			t.Fatalf("expected track 1, got %v", s.Track)
		}
		if s.Playing {
			t.Error("initial state should be paused")
		}
		if s.Duration != 222 {
			t.Errorf("expected duration 222, got %d", s.Duration)
		}
	})

	t.Run("without track", func(t *testing.T) {
		s := NewState(nil)
		if s.Track != nil || s.Playing || s.Duration != 0 {
			t.Errorf("unexpected empty state: %+v", s)
		}
	})
}
