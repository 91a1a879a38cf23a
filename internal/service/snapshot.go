package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/storage"
)

// Snapshot is the persisted part of a session.
type Snapshot struct {
	Names []string
	Bills []models.Bill
}

// LoadSnapshot reads the names and bills keys once. Missing keys and
// malformed JSON both fall back to empty collections; only the latter is logged.
func LoadSnapshot(ctx context.Context, kv storage.KV) Snapshot {
	snap := Snapshot{Names: []string{}, Bills: []models.Bill{}}

	if raw, ok := read(ctx, kv, storage.KeyNames); ok {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			slog.Warn("Discarding malformed snapshot", "key", storage.KeyNames, "error", err)
		} else if names != nil {
			snap.Names = names
		}
	}

	if raw, ok := read(ctx, kv, storage.KeyBills); ok {
		var bills []models.Bill
		if err := json.Unmarshal(raw, &bills); err != nil {
			slog.Warn("Discarding malformed snapshot", "key", storage.KeyBills, "error", err)
		} else if bills != nil {
			snap.Bills = bills
		}
	}

	return snap
}

// ClearSnapshot removes the persisted names and bills.
func ClearSnapshot(ctx context.Context, kv storage.KV) error {
	for _, key := range []string{storage.KeyNames, storage.KeyBills} {
		if err := kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func read(ctx context.Context, kv storage.KV, key string) ([]byte, bool) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		slog.Warn("Failed to read snapshot", "key", key, "error", err)
		return nil, false
	}
	return raw, true
}
