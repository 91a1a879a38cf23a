package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/splitwizard/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get returns ErrNotFound for missing key", func(t *testing.T) {
		_, err := store.Get(ctx, storage.KeyNames)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Set then Get round trips the value", func(t *testing.T) {
		want := `["Alice","Bob"]`
		if err := store.Set(ctx, storage.KeyNames, []byte(want)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := store.Get(ctx, storage.KeyNames)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != want {
			t.Errorf("Value mismatch: got %s, want %s", got, want)
		}
	})

	t.Run("Set overwrites and bumps updated_at", func(t *testing.T) {
		store.now = func() time.Time { return time.Unix(1000, 0) }
		if err := store.Set(ctx, storage.KeyBills, []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		store.now = func() time.Time { return time.Unix(2000, 0) }
		if err := store.Set(ctx, storage.KeyBills, []byte(`[{"description":"Lunch"}]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		store.now = time.Now

		got, err := store.Get(ctx, storage.KeyBills)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[{"description":"Lunch"}]` {
			t.Errorf("Expected overwritten value, got %s", got)
		}

		updated, err := store.UpdatedAt(ctx, storage.KeyBills)
		if err != nil {
			t.Fatalf("UpdatedAt failed: %v", err)
		}
		if updated.Unix() != 2000 {
			t.Errorf("UpdatedAt = %d, want 2000", updated.Unix())
		}
	})

	t.Run("Keys lists keys alphabetically", func(t *testing.T) {
		keys, err := store.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		if len(keys) != 2 || keys[0] != storage.KeyBills || keys[1] != storage.KeyNames {
			t.Errorf("Keys = %v, want [bills names]", keys)
		}
	})

	t.Run("Delete removes the key", func(t *testing.T) {
		if err := store.Delete(ctx, storage.KeyNames); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, storage.KeyNames); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.Delete(ctx, storage.KeyNames); err != nil {
			t.Errorf("Deleting a missing key should succeed, got %v", err)
		}
	})
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := first.Set(ctx, storage.KeyNames, []byte(`["Alice"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	first.Close()

	second, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, storage.KeyNames)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `["Alice"]` {
		t.Errorf("Value after reopen = %s, want [\"Alice\"]", got)
	}
}
