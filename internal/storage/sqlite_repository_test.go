package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T, driver string) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasklist-test.db")
	repo, err := OpenSQLite(t.Context(), driver, dbPath)
	if err != nil {
		t.Fatalf("open sqlite (%s): %v", driver, err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSlotCRUDBothDrivers(t *testing.T) {
	for _, driver := range []string{DriverMattn, DriverModernc} {
		t.Run(driver, func(t *testing.T) {
			repo := setupRepo(t, driver)
			ctx := context.Background()

			if _, err := repo.GetSlot(ctx, TasksKey); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing slot, got: %v", err)
			}

			if err := repo.PutSlot(ctx, TasksKey, `[{"id":1}]`); err != nil {
				t.Fatalf("put slot: %v", err)
			}
			if err := repo.PutSlot(ctx, TasksKey, `[]`); err != nil {
				t.Fatalf("overwrite slot: %v", err)
			}
			got, err := repo.GetSlot(ctx, TasksKey)
			if err != nil {
				t.Fatalf("get slot: %v", err)
			}
			if got != `[]` {
				t.Fatalf("expected overwritten value, got %q", got)
			}

			if err := repo.DeleteSlot(ctx, TasksKey); err != nil {
				t.Fatalf("delete slot: %v", err)
			}
			if err := repo.DeleteSlot(ctx, TasksKey); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
			}
		})
	}
}

func TestSlotUpdatedAtUsesClock(t *testing.T) {
	repo := setupRepo(t, DriverMattn)
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	if err := repo.PutSlot(t.Context(), "k", "v"); err != nil {
		t.Fatalf("put slot: %v", err)
	}
	slot, err := repo.getSlot(t.Context(), "k")
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if !slot.UpdatedAt.Equal(fixed) || slot.Value != "v" {
		t.Fatalf("unexpected slot: %#v", slot)
	}
}

func TestOpenSQLiteRejectsUnknownDriver(t *testing.T) {
	_, err := OpenSQLite(t.Context(), "postgres", filepath.Join(t.TempDir(), "x.db"))
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNewSQLiteRepositoryNilDB(t *testing.T) {
	if _, err := NewSQLiteRepository(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
