package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists drafts as JSON files under a directory, one file per
// draft, keyed by the draft's client id. It is a local convenience only;
// nothing is sent to the server until the draft is explicitly created.
type Store struct {
	dir string
}

// NewStore creates a draft store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, "draft_"+id+".json")
}

// Save writes the draft, overwriting any previous snapshot with the same id.
func (s *Store) Save(d Draft) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(d.ID), data, 0o644)
}

// Load reads the draft with the given id.
func (s *Store) Load(id string) (Draft, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return Draft{}, err
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("failed to parse draft %s: %w", id, err)
	}
	return d, nil
}

// List returns the ids of every stored draft.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "draft_") && strings.HasSuffix(name, ".json") {
			ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, "draft_"), ".json"))
		}
	}
	return ids, nil
}
