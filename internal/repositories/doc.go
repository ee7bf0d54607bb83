// Package repositories implements SQLite persistence for the track catalog.
//
// [TrackRepository] stores catalog entries with an explicit display position so the sidebar order
// survives a round trip. [TrackRepository.Seed] replaces the whole catalog in one transaction and is
// how `setup database` installs the built-in playlist.
//
// The catalog is read once at process start through [LoadCatalog]; nothing about listening state
// is ever written back.
package repositories
