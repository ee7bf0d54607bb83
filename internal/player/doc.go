// Package player implements the playback and selection state shared by every presentation of neonx.
//
// [State] is an explicitly owned value with a single update entry point, [State.Apply], which
// takes a [Command] and returns the next state. There are no package-level singletons: the TUI
// model owns one State directly, while the web server wraps one in a [Store] guarded by a mutex.
//
// State has two halves:
//   - [Selection] : the chosen track and whether it is playing, shared by the sidebar and the player
//   - [Transport] : elapsed time, volume, mute, shuffle, repeat and like flags, local to the player
//
// Playback time only advances through [Tick] commands. When a tick finds the elapsed time at or past
// the track duration, playback stops and the elapsed time returns to zero.
//
// [Clock] drives ticks for a [Store] and only holds a running timer while the store is playing.
package player
