package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDatabase(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "neonx.db")
		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected database file at %s: %v", path, err)
		}
	})

	t.Run("memory database is pinned to one connection", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		if got := db.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected 1 max open connection, got %d", got)
		}
	})

	t.Run("ConfigureDatabase ignores non-positive limits", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()

		ConfigureDatabase(db, 0, 0)
		if got := db.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected limit to stay 1, got %d", got)
		}

		ConfigureDatabase(db, 4, 2)
		if got := db.Stats().MaxOpenConnections; got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})
}
