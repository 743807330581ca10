package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"lagam-golang/internal/config"
)

const (
	usersFile   = "users.json"
	teamsFile   = "teams.json"
	catalogFile = "catalog.json"
	lagamsFile  = "lagams.json"
	tasksFile   = "tasks.json"
)

// Storage is the flat-file record store: one JSON array file per
// entity type under the data directory. Every read parses the whole
// file, every write serializes the whole array back. There is no
// locking; concurrent writers race and the last full-file write wins.
type Storage struct {
	dir string
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.jsonfile.New"

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{dir: cfg.DataDir}, nil
}

// readAll loads one entity file into dst (a pointer to a slice). A
// missing file reads as an empty collection.
func (s *Storage) readAll(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

// writeAll serializes the whole collection back, 2-space indented.
func (s *Storage) writeAll(name string, src any) error {
	encoded, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), append(encoded, '\n'), 0o644)
}
