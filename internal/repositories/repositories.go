// package repositories provides persistence layer implementations for the catalog.
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/shared"
)

// NextPosition returns the display position after the last stored track.
func NextPosition(db *sql.DB) (int, error) {
	var position int
	if err := db.QueryRow("SELECT COALESCE(MAX(position) + 1, 0) FROM tracks").Scan(&position); err != nil {
		return 0, fmt.Errorf("failed to get next position: %w", err)
	}
	return position, nil
}

// LoadCatalog reads every stored track into an immutable [models.Catalog].
func LoadCatalog(repo *TrackRepository) (*models.Catalog, error) {
	entries, err := repo.List()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, shared.ErrEmptyCatalog
	}

	tracks := make([]models.Track, len(entries))
	for i, e := range entries {
		tracks[i] = e.Track
	}

	catalog, err := models.NewCatalog(tracks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return catalog, nil
}
