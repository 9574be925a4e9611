// Package staterepo persists state summaries in an embedded Badger store.
//
// The newest summary is kept under a fixed key and every summary is also
// written under a key ordered by its timestamp, so history can be scanned
// newest first with a reverse iterator.
package staterepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"

	"github.com/dgraph-io/badger/v4"
)

const (
	latestKey     = "state/latest"
	historyPrefix = "state/at/"
	// Fixed width keeps lexical key order equal to chronological order.
	keyTimeLayout = "20060102T150405.000000000Z"
)

type summaryRecord struct {
	RecordedAt time.Time `json:"recorded_at"`
	Warehouses int       `json:"warehouses"`
	Lines      int       `json:"lines"`
	Packages   int       `json:"packages"`
	Pallets    int       `json:"pallets"`
}

// BadgerStateRepository implements ports.StateRecorder on top of Badger.
type BadgerStateRepository struct {
	db *badger.DB
}

// Open opens (or creates) a Badger directory. An empty path opens an
// in-memory store. Badger's own logger is disabled.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}

func NewBadgerStateRepository(db *badger.DB) *BadgerStateRepository {
	return &BadgerStateRepository{db: db}
}

func (r *BadgerStateRepository) Record(ctx context.Context, summary inventory.StateSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := summaryRecord{
		RecordedAt: summary.RecordedAt.UTC(),
		Warehouses: summary.Warehouses,
		Lines:      summary.Lines,
		Packages:   summary.Packages,
		Pallets:    summary.Pallets,
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(latestKey), value); err != nil {
			return err
		}
		return txn.Set(historyKey(rec.RecordedAt), value)
	})
}

func (r *BadgerStateRepository) Latest(ctx context.Context) (inventory.StateSummary, error) {
	if err := ctx.Err(); err != nil {
		return inventory.StateSummary{}, err
	}

	var rec summaryRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return inventory.StateSummary{}, errs.NewObjectNotFoundErrorWithCause("stateSummary", latestKey, err)
		}
		return inventory.StateSummary{}, err
	}
	return rec.toDomain(), nil
}

// History returns up to limit summaries, newest first. Summaries recorded at
// the same instant share a key, so only the last of them is kept.
func (r *BadgerStateRepository) History(ctx context.Context, limit int) ([]inventory.StateSummary, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	out := make([]inventory.StateSummary, 0, limit)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(historyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts from the largest key within the prefix.
		seek := append([]byte(historyPrefix), 0xFF)
		for it.Seek(seek); it.Valid() && len(out) < limit; it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec summaryRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func historyKey(at time.Time) []byte {
	return []byte(historyPrefix + at.UTC().Format(keyTimeLayout))
}

func (rec summaryRecord) toDomain() inventory.StateSummary {
	return inventory.StateSummary{
		RecordedAt: rec.RecordedAt.UTC(),
		Warehouses: rec.Warehouses,
		Lines:      rec.Lines,
		Packages:   rec.Packages,
		Pallets:    rec.Pallets,
	}
}
