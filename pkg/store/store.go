// Package store is the storage collaborator for layout documents: it
// loads the on-disk plist, persists corrected copies atomically, keeps
// timestamped backups, and guards the load-modify-save cycle with an
// advisory file lock.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/springclean/pkg/errors"
	"github.com/arthur-debert/springclean/pkg/layout"
	"github.com/arthur-debert/springclean/pkg/logging"
)

// Store binds layout persistence to a single document path.
type Store struct {
	fs         afero.Fs
	path       string
	backupsDir string
	flk        *flock.Flock
	logger     zerolog.Logger
}

// New creates a store for the layout document at path. Backups are
// written under backupsDir; pass an empty string to disable Backup.
func New(fs afero.Fs, path, backupsDir string) *Store {
	return &Store{
		fs:         fs,
		path:       path,
		backupsDir: backupsDir,
		flk:        flock.New(path + ".lock"),
		logger:     logging.GetLogger("store"),
	}
}

// Path returns the layout document path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Lock acquires the advisory lock guarding the document. The lock
// lives next to the layout file so concurrent springclean runs on the
// same document exclude each other.
func (s *Store) Lock() error {
	locked, err := s.flk.TryLock()
	if err != nil {
		return errors.Wrapf(err, errors.ErrLockAcquire,
			"failed to acquire lock %s", s.flk.Path())
	}
	if !locked {
		return errors.Newf(errors.ErrLockAcquire,
			"layout %s is locked by another process", s.path)
	}
	return nil
}

// Unlock releases the advisory lock.
func (s *Store) Unlock() {
	if err := s.flk.Unlock(); err != nil {
		s.logger.Warn().Err(err).Str("lock", s.flk.Path()).Msg("Failed to release lock")
	}
}

// Load reads and decodes the layout document. A missing file is
// reported with ErrLayoutMissing so callers can branch to the
// fallback path without treating it as a hard failure.
func (s *Store) Load() (*layout.Document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrLayoutMissing,
				"layout %s does not exist", s.path)
		}
		return nil, errors.Wrapf(err, errors.ErrLayoutRead,
			"failed to read layout %s", s.path)
	}

	doc, err := layout.Decode(data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("pages", len(doc.Pages)).
		Int("dockEntries", len(doc.Dock)).
		Msg("Layout loaded")
	return doc, nil
}

// Persist writes the document atomically: encode, write to a
// temporary file in the same directory, then rename over the
// original. Readers never observe a partially written layout.
func (s *Store) Persist(doc *layout.Document) error {
	data, err := layout.Encode(doc)
	if err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.tmp%d", s.path, os.Getpid())
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrLayoutWrite,
			"failed to write temporary layout %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrLayoutWrite,
			"failed to replace layout %s", s.path)
	}

	s.logger.Info().Str("path", s.path).Int("bytes", len(data)).Msg("Layout persisted")
	return nil
}

// Backup copies the current on-disk document into the backups
// directory under a timestamped name and returns the backup path.
func (s *Store) Backup() (string, error) {
	if s.backupsDir == "" {
		return "", errors.New(errors.ErrBackup, "no backups directory configured")
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup,
			"failed to read layout %s for backup", s.path)
	}

	if err := s.fs.MkdirAll(s.backupsDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup,
			"failed to create backups directory %s", s.backupsDir)
	}

	base := filepath.Base(s.path)
	ext := filepath.Ext(base)
	name := fmt.Sprintf("%s-%s%s",
		strings.TrimSuffix(base, ext),
		time.Now().Format("20060102-150405"),
		ext)
	backupPath := filepath.Join(s.backupsDir, name)

	if err := afero.WriteFile(s.fs, backupPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup,
			"failed to write backup %s", backupPath)
	}

	s.logger.Info().Str("backup", backupPath).Msg("Layout backed up")
	return backupPath, nil
}
