package backups

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/aide/logs"
	"github.com/zeebo/xxh3"
)

const (
	maxPerFile = 10
	maxHistory = 100
)

// Store keeps blob files named by entry id under the root directory, beside
// the index.json catalogue. Single process, sequential use; there is no
// cross-process locking on the index file.
type Store struct {
	root   string
	index  *Index
	logger logs.Logger
}

func (Module) Store(
	root BackupRoot,
	logger logs.Logger,
) *Store {
	store := &Store{
		root:   string(root),
		index:  NewIndex(),
		logger: logger,
	}
	store.load()
	return store
}

func (s *Store) indexPath() string {
	return filepath.Join(s.root, "index.json")
}

func (s *Store) load() {
	content, err := os.ReadFile(s.indexPath())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read backup index",
				"path", s.indexPath(),
				"error", err,
			)
		}
		return
	}
	if err := json.Unmarshal(content, s.index); err != nil {
		s.logger.Warn("corrupt backup index, starting empty",
			"path", s.indexPath(),
			"error", err,
		)
		s.index = NewIndex()
	}
}

func (s *Store) persist() error {
	content, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return err
	}
	tmpPath := s.indexPath() + fmt.Sprintf(".%d.tmp", rand.Int64())
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.indexPath()); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Create snapshots the current content of filePath. The id is the xxh3-128
// hex of the canonical path and the creation timestamp. Retention runs
// before the index is persisted: per-file lists keep the 10 most recent
// entries and evicted ids lose their blobs; the history keeps the 100 most
// recent without touching blobs.
func (s *Store) Create(filePath string, operation string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", err
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	id := fmt.Sprintf("%x", xxh3.Hash128([]byte(absPath+"\x00"+timestamp)).Bytes())

	if err := os.WriteFile(filepath.Join(s.root, id), content, 0644); err != nil {
		return "", err
	}

	s.index.Add(&Entry{
		ID:        id,
		FilePath:  absPath,
		Timestamp: timestamp,
		Operation: operation,
	})

	for _, evicted := range s.index.TrimFile(absPath, maxPerFile) {
		if err := os.Remove(filepath.Join(s.root, evicted.ID)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("remove evicted backup blob",
				"id", evicted.ID,
				"error", err,
			)
		}
	}
	s.index.TrimHistory(maxHistory)

	if err := s.persist(); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the backups of filePath, most recent first. It never fails:
// lookup problems yield an empty list.
func (s *Store) List(filePath string) []*Entry {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil
	}
	return s.index.File(absPath)
}

// ListAll returns the global history, most recent first.
func (s *Store) ListAll() []*Entry {
	return s.index.History()
}
