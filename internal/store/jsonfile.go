// Package store implements the JSON file persistence used by the
// development backend. Each file holds a single pretty-printed JSON array
// which is read and rewritten wholesale on every operation.
//
// There is no locking and no atomic rename: a write overwrites the file in
// place, so a crash mid-write can corrupt it, and two concurrent writers
// race with the last write silently discarding the other's update. This
// lost-update hazard is a documented property of the file backend, matching
// the behavior the store was built around.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Read returns the records decoded from the JSON array at path. A missing,
// empty, unreadable or malformed file yields an empty slice; the failure is
// logged and never surfaced to the caller.
func Read[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read records file", slog.Any("err", err), slog.String("path", path))
		}
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Error("failed to decode records file", slog.Any("err", err), slog.String("path", path))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Write serializes records as a pretty-printed JSON array and overwrites
// the file at path.
func Write[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write records file: %w", err)
	}
	return nil
}
