package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/shared"
)

const trackColumns = "id, position, title, artist, duration, video_id, description, created_at, updated_at"

// TrackRepository persists [models.CatalogEntry] rows in the tracks table.
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create appends a track at the end of the catalog and fills in its position and timestamps.
func (r *TrackRepository) Create(entry *models.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	position, err := NextPosition(r.db)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entry.Position = position
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := insertTrack(r.db, entry); err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}
	return nil
}

// Get retrieves a track by ID
func (r *TrackRepository) Get(id int) (*models.CatalogEntry, error) {
	query := "SELECT " + trackColumns + " FROM tracks WHERE id = ?"
	return scanTrack(r.db.QueryRow(query, id))
}

// Update modifies an existing track's metadata in place, keeping its position.
func (r *TrackRepository) Update(entry *models.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	entry.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tracks
		SET title = ?, artist = ?, duration = ?, video_id = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		entry.Title,
		entry.Artist,
		entry.Duration,
		entry.VideoID,
		entry.Description,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	return expectOneRow(result, entry.ID)
}

// Delete removes a track by ID
func (r *TrackRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM tracks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	return expectOneRow(result, id)
}

// List returns every track in display order
func (r *TrackRepository) List() ([]*models.CatalogEntry, error) {
	rows, err := r.db.Query("SELECT " + trackColumns + " FROM tracks ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var entries []*models.CatalogEntry
	for rows.Next() {
		entry, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored tracks.
func (r *TrackRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return n, nil
}

// Seed replaces the stored catalog with tracks, in order, inside a single transaction.
func (r *TrackRepository) Seed(tracks []models.Track) error {
	if _, err := models.NewCatalog(tracks); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tracks"); err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}

	now := time.Now().UTC()
	for i, t := range tracks {
		entry := &models.CatalogEntry{Track: t, Position: i, CreatedAt: now, UpdatedAt: now}
		if err := insertTrack(tx, entry); err != nil {
			return fmt.Errorf("failed to insert track %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func insertTrack(db execer, entry *models.CatalogEntry) error {
	query := "INSERT INTO tracks (" + trackColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := db.Exec(query,
		entry.ID,
		entry.Position,
		entry.Title,
		entry.Artist,
		entry.Duration,
		entry.VideoID,
		entry.Description,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

// scanTrack scans a single row from [sql.Row] or [sql.Rows] into a [models.CatalogEntry]
func scanTrack(row scanner) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry

	err := row.Scan(
		&entry.ID,
		&entry.Position,
		&entry.Title,
		&entry.Artist,
		&entry.Duration,
		&entry.VideoID,
		&entry.Description,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	return &entry, nil
}

func expectOneRow(result sql.Result, id int) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", shared.ErrTrackNotFound, id)
	}
	return nil
}
