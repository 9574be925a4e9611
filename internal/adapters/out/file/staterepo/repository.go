// Package staterepo writes the latest state summary to a JSON file. The file
// is overwritten on every commit and outlives the process: a repository opened
// on an existing file reports the summary found there.
package staterepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"
)

const filePerm = 0o644

type document struct {
	Timestamp  time.Time `json:"timestamp"`
	Warehouses int       `json:"warehouses"`
	Lines      int       `json:"lines"`
	Packages   int       `json:"packages"`
	Pallets    int       `json:"pallets"`
}

// FileStateRepository implements ports.StateRecorder with a single JSON file.
type FileStateRepository struct {
	path string
}

func NewFileStateRepository(path string) (*FileStateRepository, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &FileStateRepository{path: path}, nil
}

// Record replaces the file. It writes a sibling temp file first and renames
// it, so readers never see a partial document.
func (r *FileStateRepository) Record(ctx context.Context, summary inventory.StateSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(document{
		Timestamp:  summary.RecordedAt.UTC(),
		Warehouses: summary.Warehouses,
		Lines:      summary.Lines,
		Packages:   summary.Packages,
		Pallets:    summary.Pallets,
	}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, r.path)
}

func (r *FileStateRepository) Latest(ctx context.Context) (inventory.StateSummary, error) {
	if err := ctx.Err(); err != nil {
		return inventory.StateSummary{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return inventory.StateSummary{}, errs.NewObjectNotFoundErrorWithCause("stateSummary", r.path, err)
		}
		return inventory.StateSummary{}, err
	}

	var doc document
	if err = json.Unmarshal(data, &doc); err != nil {
		return inventory.StateSummary{}, errs.NewValueIsInvalidErrorWithCause("stateFile", err)
	}
	return inventory.StateSummary{
		RecordedAt: doc.Timestamp.UTC(),
		Warehouses: doc.Warehouses,
		Lines:      doc.Lines,
		Packages:   doc.Packages,
		Pallets:    doc.Pallets,
	}, nil
}
