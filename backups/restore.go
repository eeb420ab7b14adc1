package backups

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
)

var (
	ErrNoBackups     = errors.New("no backups for file")
	ErrIDNotFound    = errors.New("backup id not found for file")
	ErrNoHistory     = errors.New("no backup history")
	ErrBlobMissing   = errors.New("backup file missing")
	ErrTargetMissing = errors.New("target file no longer exists")
)

type Restored struct {
	FilePath  string
	Timestamp string
	Operation string
}

// Restore copies a backup blob back over its original file. With a filePath
// the per-file list is consulted: the given backupID must be in that list,
// or with no id the most recent entry is taken. With no filePath the most
// recent entry of the global history is taken and the path derives from it.
// There is no matching beyond "most recent" and "explicit id". A restore
// overwrites only: a target that no longer exists is never recreated.
func (s *Store) Restore(filePath string, backupID string) (*Restored, error) {
	var entry *Entry

	if filePath != "" {
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			return nil, err
		}
		entries := s.index.File(absPath)
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoBackups, absPath)
		}
		if backupID != "" {
			for _, e := range entries {
				if e.ID == backupID {
					entry = e
					break
				}
			}
			if entry == nil {
				return nil, fmt.Errorf("%w: %s", ErrIDNotFound, backupID)
			}
		} else {
			entry = entries[0]
		}

	} else {
		history := s.index.History()
		if len(history) == 0 {
			return nil, ErrNoHistory
		}
		entry = history[0]
	}

	blobPath := filepath.Join(s.root, entry.ID)
	content, err := os.ReadFile(blobPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlobMissing, blobPath)
		}
		return nil, err
	}

	stat, err := os.Stat(entry.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTargetMissing, entry.FilePath)
		}
		return nil, err
	}

	tmpPath := entry.FilePath + fmt.Sprintf(".%d.tmp", rand.Int64())
	if err := os.WriteFile(tmpPath, content, stat.Mode().Perm()); err != nil {
		return nil, err
	}
	if err := os.Rename(tmpPath, entry.FilePath); err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	return &Restored{
		FilePath:  entry.FilePath,
		Timestamp: entry.Timestamp,
		Operation: entry.Operation,
	}, nil
}
