// Package repo contains all persistence for the itinerary planner.
// Storage is a single key-value table: each logical collection (trips,
// favorite locations, settings) is one JSON document under a fixed key,
// mirroring the original three-key localStorage layout. The typed
// stores wrap the KV with the degrade-to-default contract: reads fall
// back to defaults and writes are logged but never surface errors.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// Fixed keys for the application's three logical collections.
// ClearAll removes exactly these and nothing else, so the table can be
// shared with unrelated data.
const (
	KeyTrips     = "itinerary_trips"
	KeyLocations = "itinerary_locations"
	KeySettings  = "itinerary_settings"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly
// lets integration tests pass a transaction that is rolled back after
// each test, giving per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KV is a generic get/set/delete over the process-wide key-value store.
// Get returns domain.ErrNotFound for a missing key. The typed stores
// below are the only intended callers.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// pgKV is the Postgres implementation of KV, over the kv_store table.
type pgKV struct {
	db db
}

// NewPostgresKV constructs a KV backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewPostgresKV(db db) KV {
	return &pgKV{db: db}
}

func (r *pgKV) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = @key`

	var value []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repo.KV.Get %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.KV.Get %q: %w", key, err)
	}
	return value, nil
}

func (r *pgKV) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value})
	if err != nil {
		return fmt.Errorf("repo.KV.Set %q: %w", key, err)
	}
	return nil
}

func (r *pgKV) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_store WHERE key = @key`

	// Deleting an absent key is not an error: the caller's goal — the
	// key being gone — is already met.
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key})
	if err != nil {
		return fmt.Errorf("repo.KV.Delete %q: %w", key, err)
	}
	return nil
}

// ClearAll removes the application's three keys from the store. Other
// keys in a shared table are untouched. The first failure is returned;
// later keys are still attempted.
func ClearAll(ctx context.Context, kv KV) error {
	var firstErr error
	for _, key := range []string{KeyTrips, KeyLocations, KeySettings} {
		if err := kv.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
