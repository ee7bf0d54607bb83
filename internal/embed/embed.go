// Package embed resolves the external YouTube video for a track and builds the URLs handed to the embed.
//
// A track's own VideoID wins; otherwise the default table keyed by catalog ID is used, and
// [FallbackVideoID] covers everything else. Identifiers are passed through unvalidated.
package embed

import (
	"net/url"

	"github.com/desertthunder/neonx/internal/models"
)

const (
	FallbackVideoID     = "dQw4w9WgXcQ"
	FallbackDescription = "A one-of-a-kind cyberpunk listening experience fusing futuristic textures with immersive melodies."

	embedBase = "https://www.youtube.com/embed/"
	watchBase = "https://www.youtube.com/watch"
)

var defaultVideos = map[int]string{
	1:  "dQw4w9WgXcQ",
	2:  "jfKfPfyJRdk",
	3:  "9bZkp7q19f0",
	4:  "kXYiU_JCYtU",
	5:  "M7lc1UVf-VE",
	6:  "ScNNfyq3d_w",
	7:  "K4DyBUG242c",
	8:  "qeMFqkcPYcg",
	9:  "ZZ5LpwO-An4",
	10: "pAgnJDJN4VA",
}

var defaultDescriptions = map[int]string{
	1:  "A cyberpunk soundscape that carries you through the neon streets of a future city. Synthetic melodies wrapped in ethereal atmospheres.",
	2:  "Digital horizons stretch out endlessly in a piece that fuses electronic elements with immersive soundscapes.",
	3:  "Chrome pulses echo through neural circuits, building a symphony of light and sound in technological harmony.",
	4:  "The electric mind comes alive through synthetic waves that probe the line between human and artificial.",
	5:  "A night ride through the lit streets of a cyberpunk metropolis, every beat a heartbeat of the city that never sleeps.",
	6:  "Cybernetic rain falls on holographic surfaces while ambient melodies build a contemplative, futuristic mood.",
	7:  "The binary soul speaks through algorithmic sequences that cross the barrier between code and human emotion.",
	8:  "Virtual reality turned into sound, where every note builds infinite digital worlds of possibility.",
	9:  "The machine's heart beats in electronic rhythms that evoke a fusion of technology and feeling.",
	10: "Future shock rendered as sound waves that foretell worlds to come in this definitive cyberpunk odyssey.",
}

// VideoID returns the video identifier for t.
func VideoID(t models.Track) string {
	if t.VideoID != "" {
		return t.VideoID
	}
	if id, ok := defaultVideos[t.ID]; ok {
		return id
	}
	return FallbackVideoID
}

// Description returns the text shown under the player for t.
func Description(t models.Track) string {
	if t.Description != "" {
		return t.Description
	}
	if d, ok := defaultDescriptions[t.ID]; ok {
		return d
	}
	return FallbackDescription
}

// EmbedURL builds the iframe source for t, with autoplay and mute reflecting the player state.
func EmbedURL(t models.Track, playing, muted bool) string {
	q := url.Values{}
	q.Set("autoplay", flag(playing))
	q.Set("mute", flag(muted))
	return embedBase + url.PathEscape(VideoID(t)) + "?" + q.Encode()
}

// WatchURL is the page for t on youtube.com.
func WatchURL(t models.Track) string {
	return watchBase + "?" + url.Values{"v": {VideoID(t)}}.Encode()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
