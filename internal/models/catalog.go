package models

import "fmt"

// Catalog is the ordered, fixed list of tracks shown in the sidebar.
type Catalog struct {
	tracks []Track
	index  map[int]int
}

// NewCatalog builds a catalog from tracks, preserving their order.
//
// Every track must validate and IDs must be unique.
func NewCatalog(tracks []Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]Track, len(tracks)),
		index:  make(map[int]int, len(tracks)),
	}
	copy(c.tracks, tracks)

	for i, t := range c.tracks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d: %w", i, err)
		}
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate track id %d", t.ID)
		}
		c.index[t.ID] = i
	}
	return c, nil
}

// Tracks returns a copy of the catalog in display order.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Len returns the number of tracks.
func (c *Catalog) Len() int { return len(c.tracks) }

// At returns the track at position i.
func (c *Catalog) At(i int) Track { return c.tracks[i] }

// Get looks up a track by ID.
func (c *Catalog) Get(id int) (Track, bool) {
	i, ok := c.index[id]
	if !ok {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Position returns the zero-based display position of the track with the given ID, or -1.
func (c *Catalog) Position(id int) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// TotalSeconds sums the durations of all tracks.
func (c *Catalog) TotalSeconds() int {
	total := 0
	for _, t := range c.tracks {
		total += t.Seconds()
	}
	return total
}

// DefaultCatalog returns the built-in ten track playlist.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTracks)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

var defaultTracks = []Track{
	{ID: 1, Title: "Neon Dreams", Artist: "Cyber Synthwave", Duration: "3:42"},
	{ID: 2, Title: "Digital Horizon", Artist: "Neural Network", Duration: "4:15"},
	{ID: 3, Title: "Chrome Pulse", Artist: "Data Stream", Duration: "3:28"},
	{ID: 4, Title: "Electric Mind", Artist: "Code Matrix", Duration: "4:03"},
	{ID: 5, Title: "Neon City", Artist: "Pixel Dreams", Duration: "3:55"},
	{ID: 6, Title: "Cyber Rain", Artist: "Tech Noir", Duration: "4:22"},
	{ID: 7, Title: "Binary Soul", Artist: "Ghost Protocol", Duration: "3:38"},
	{ID: 8, Title: "Virtual Reality", Artist: "System Override", Duration: "4:08"},
	{ID: 9, Title: "Machine Heart", Artist: "AI Collective", Duration: "3:52"},
	{ID: 10, Title: "Future Shock", Artist: "Quantum Leap", Duration: "4:16"},
}
