package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func newEntry(id int, title, duration string) *models.CatalogEntry {
	return &models.CatalogEntry{Track: models.Track{ID: id, Title: title, Artist: "Test Artist", Duration: duration}}
}

func TestTrackRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		first := newEntry(1, "First", "1:00")
		second := newEntry(2, "Second", "2:00")

		if err := repo.Create(first); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}
		if err := repo.Create(second); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if first.Position != 0 || second.Position != 1 {
			t.Errorf("expected positions 0 and 1, got %d and %d", first.Position, second.Position)
		}
		if first.CreatedAt.IsZero() {
			t.Error("created_at should be set after creation")
		}
	})

	t.Run("Create rejects invalid tracks", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Create(newEntry(1, "", "1:00")); err == nil {
			t.Error("expected validation error for empty title")
		}
		if err := repo.Create(newEntry(1, "Bad", "forever")); err == nil {
			t.Error("expected validation error for bad duration")
		}
	})

	t.Run("Create rejects duplicate ids", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Create(newEntry(1, "One", "1:00")); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}
		if err := repo.Create(newEntry(1, "Again", "1:00")); err == nil {
			t.Error("expected error for duplicate id")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		entry := newEntry(3, "Chrome Pulse", "3:28")
		entry.VideoID = "9bZkp7q19f0"
		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		got, err := repo.Get(3)
		if err != nil {
			t.Fatalf("failed to get track: %v", err)
		}
		if got.Track != entry.Track {
			t.Errorf("expected %+v, got %+v", entry.Track, got.Track)
		}

		if _, err := repo.Get(99); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		entry := newEntry(1, "Draft", "1:00")
		if err := repo.Create(entry); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		entry.Title = "Final"
		entry.Description = "updated"
		if err := repo.Update(entry); err != nil {
			t.Fatalf("failed to update track: %v", err)
		}

		got, err := repo.Get(1)
		if err != nil {
			t.Fatalf("failed to get track: %v", err)
		}
		if got.Title != "Final" || got.Description != "updated" {
			t.Errorf("update not persisted: %+v", got)
		}

		missing := newEntry(50, "Nobody", "1:00")
		if err := repo.Update(missing); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Create(newEntry(1, "Gone", "1:00")); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}
		if err := repo.Delete(1); err != nil {
			t.Fatalf("failed to delete track: %v", err)
		}
		if err := repo.Delete(1); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound on second delete, got %v", err)
		}
	})

	t.Run("Seed and List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Create(newEntry(42, "Old", "1:00")); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		tracks := models.DefaultCatalog().Tracks()
		if err := repo.Seed(tracks); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		entries, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(entries) != len(tracks) {
			t.Fatalf("expected %d entries, got %d", len(tracks), len(entries))
		}
		for i, e := range entries {
			if e.Track != tracks[i] {
				t.Errorf("position %d: expected %+v, got %+v", i, tracks[i], e.Track)
			}
			if e.Position != i {
				t.Errorf("expected position %d, got %d", i, e.Position)
			}
		}

		n, err := repo.Count()
		if err != nil || n != len(tracks) {
			t.Errorf("Count() = %d, %v", n, err)
		}
	})

	t.Run("Seed rejects invalid catalogs atomically", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Seed(models.DefaultCatalog().Tracks()); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		bad := []models.Track{
			{ID: 1, Title: "A", Duration: "1:00"},
			{ID: 1, Title: "B", Duration: "1:00"},
		}
		if err := repo.Seed(bad); err == nil {
			t.Fatal("expected error for duplicate ids")
		}

		if n, _ := repo.Count(); n != 10 {
			t.Errorf("expected existing catalog to survive, got %d tracks", n)
		}
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		if _, err := LoadCatalog(NewTrackRepository(db)); !errors.Is(err, shared.ErrEmptyCatalog) {
			t.Errorf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("seeded", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if err := repo.Seed(models.DefaultCatalog().Tracks()); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		catalog, err := LoadCatalog(repo)
		if err != nil {
			t.Fatalf("failed to load catalog: %v", err)
		}
		track, ok := catalog.Get(3)
		if !ok || track.Title != "Chrome Pulse" {
			t.Errorf("unexpected track 3: %+v", track)
		}
	})
}
