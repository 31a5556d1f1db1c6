package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FileStore keeps one JSON file per record under a directory. Suitable for
// the CLI, where records survive between invocations on one machine.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating record directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path returns the record file path. IDs are UUIDs, validated before use so
// a crafted ID cannot escape the directory.
func (s *FileStore) path(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, id+".json"), nil
}

// Get retrieves a record by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("corrupt record %s: %w", id, err)
	}
	return &r, nil
}

// Save stores a record.
func (s *FileStore) Save(ctx context.Context, record *Record) error {
	path, err := s.path(record.ID)
	if err != nil {
		return fmt.Errorf("invalid record id: %s", record.ID)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// List returns all records ordered by creation time. Files that fail to
// parse are skipped rather than failing the whole listing.
func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		out = append(out, &r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Delete removes a record.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
