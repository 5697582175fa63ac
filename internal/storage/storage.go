// Package storage persists the entire board snapshot as a single JSON
// blob under one storage key (a file path). It is the Go counterpart
// of a browser's local-storage slot: one key, whole-value overwrite,
// and fail-soft reads.
package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/agentictools/taskboard/internal/board"
)

// Key is the logical storage key the board lives under. The default
// board file is named after it.
const Key = "agentic-task-board"

// DefaultFileName is the file name used when no board file is
// configured explicitly.
const DefaultFileName = Key + ".json"

const dirPerms = 0o750

// Store reads and writes the board snapshot at a fixed path.
//
// A Store with an empty path models "no persistent storage available":
// Load reports absent and Save is a no-op. Neither method ever returns
// an error; corrupt or unreachable storage degrades to the absent/no-op
// behavior instead.
type Store struct {
	path string
}

// New returns a store persisting to the given path. An empty path
// yields a store with storage disabled.
func New(path string) *Store {
	return &Store{path: path}
}

// Nop returns a store with storage disabled.
func Nop() *Store {
	return New("")
}

// Path returns the backing file path, empty when storage is disabled.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot.
//
// The second return is false when no usable snapshot exists: the store
// is disabled, the file is missing or unreadable, the content is not
// valid JSON, or the decoded value fails the strict shape check. The
// caller is expected to fall back to seed data.
func (s *Store) Load() (board.Snapshot, bool) {
	if s == nil || s.path == "" {
		return nil, false
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return nil, false
	}

	return snapshot, true
}

// Save serializes the full snapshot and overwrites the storage key.
//
// The write is atomic (write-to-temp plus rename) so a crash mid-save
// never leaves a torn file behind. All failures are swallowed: when
// storage is unavailable Save is a no-op, never an error.
func (s *Store) Save(snapshot board.Snapshot) {
	if s == nil || s.path == "" {
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, dirPerms); err != nil {
			return
		}
	}

	_ = atomic.WriteFile(s.path, bytes.NewReader(data))
}
