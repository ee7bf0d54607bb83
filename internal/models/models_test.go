package models

import "testing"

func TestParseDuration(t *testing.T) {
	tt := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "zero", in: "0:00", want: 0},
		{name: "one minute five", in: "1:05", want: 65},
		{name: "catalog length", in: "3:42", want: 222},
		{name: "long track", in: "12:30", want: 750},
		{name: "surrounding space", in: " 4:16 ", want: 256},
		{name: "missing colon", in: "342", wantErr: true},
		{name: "single digit seconds", in: "3:4", wantErr: true},
		{name: "seconds overflow", in: "3:60", wantErr: true},
		{name: "negative minutes", in: "-1:00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	t.Run("DefaultCatalog", func(t *testing.T) {
		c := DefaultCatalog()
		if c.Len() != 10 {
			t.Fatalf("expected 10 tracks, got %d", c.Len())
		}

		for i, track := range c.Tracks() {
			if track.ID != i+1 {
				t.Errorf("expected track at position %d to have id %d, got %d", i, i+1, track.ID)
			}
		}
	})

	t.Run("Get", func(t *testing.T) {
		c := DefaultCatalog()
		track, ok := c.Get(3)
		if !ok {
			t.Fatal("expected track 3 to exist")
		}
		if track.Title != "Chrome Pulse" || track.Artist != "Data Stream" || track.Duration != "3:28" {
			t.Errorf("unexpected track 3: %+v", track)
		}

		if _, ok := c.Get(42); ok {
			t.Error("expected track 42 to be missing")
		}
	})

	t.Run("Position", func(t *testing.T) {
		c := DefaultCatalog()
		if got := c.Position(10); got != 9 {
			t.Errorf("expected position 9, got %d", got)
		}
		if got := c.Position(0); got != -1 {
			t.Errorf("expected position -1, got %d", got)
		}
	})

	t.Run("TotalSeconds", func(t *testing.T) {
		c := DefaultCatalog()
		if got := c.TotalSeconds(); got != 2379 {
			t.Errorf("expected 2379 seconds, got %d", got)
		}
	})

	t.Run("Tracks returns a copy", func(t *testing.T) {
		c := DefaultCatalog()
		tracks := c.Tracks()
		tracks[0].Title = "changed"
		if c.At(0).Title != "Neon Dreams" {
			t.Error("catalog should not be mutated through Tracks()")
		}
	})

	t.Run("NewCatalog rejects duplicates", func(t *testing.T) {
		_, err := NewCatalog([]Track{
			{ID: 1, Title: "A", Artist: "x", Duration: "1:00"},
			{ID: 1, Title: "B", Artist: "y", Duration: "2:00"},
		})
		if err == nil {
			t.Error("expected duplicate id error")
		}
	})

	t.Run("NewCatalog rejects bad duration", func(t *testing.T) {
		_, err := NewCatalog([]Track{{ID: 1, Title: "A", Duration: "soon"}})
		if err == nil {
			t.Error("expected duration error")
		}
	})
}
