// Package ui implements the neonx terminal player using bubbletea's Elm architecture.
//
// The screen has two halves:
//  1. A player panel on the left, rendered by one of the [Panel] variants ("embed", "compact", "horizontal")
//  2. The playlist sidebar on the right, a [list.Model] over the catalog
//
// The [Model] owns a single [player.State] and changes it only through [player.State.Apply].
// Panels are pure renderers of that state, so switching variants (v) keeps every control as it was.
//
// Playback time advances with a one-second [tea.Tick]. Each tick carries the generation it was
// scheduled under; pausing, selecting a track or quitting bumps the generation so stale ticks are
// dropped and no timer outlives the playback that started it.
//
// Keyboard: ↑/↓ move, enter plays the highlighted track, space toggles play, ←/→ skip 10s,
// +/- volume, m mute, s shuffle, r repeat, l like, o opens the video in a browser, v switches panel.
package ui
