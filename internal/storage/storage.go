// Package storage provides atomic writes and cross-process locking for the
// files cck modifies in place: Claude Code's settings.json and the config
// templates.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
)

// WriteFile atomically replaces path with data.
// It ensures the parent directory exists, writes to a temp file in the same
// directory, then renames it over path. Readers never see a partial file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// LockPath returns the lock file guarding path. Lock files live in the
// system temp dir so they never show up next to project files.
func LockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(os.TempDir(), "cck-"+hex.EncodeToString(sum[:8])+".lock")
}

// WithLock runs fn while holding the exclusive lock for path.
func WithLock(path string, fn func() error) error {
	lock := NewFileLock(LockPath(path))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}
