// Package models defines the track catalog for the neonx player.
//
// The package contains two kinds of types:
//
// 1. Catalog entries: immutable records loaded once at process start
//   - [Track] : Title, artist and "m:ss" duration with optional video reference and description
//   - [Catalog] : An ordered, fixed list of tracks with lookup by ID
//
// 2. Persisted rows: catalog entries as stored in SQLite
//   - [CatalogEntry] : A [Track] with its storage position and timestamps
//
// [DefaultCatalog] returns the built-in ten track playlist used when no other source is configured.
package models
