package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// RemoveAll deletes path and everything below it.
func (f *FileSystem) RemoveAll(path string) error {
	if err := f.retry(func() error { return os.RemoveAll(path) }); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// RemoveAllExcept deletes every file below path that keep rejects, then every
// directory that ended up empty. keep receives the file's base name.
func (f *FileSystem) RemoveAllExcept(path string, keep func(name string) bool) error {
	if _, err := f.prune(path, keep); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// prune reports whether dir no longer exists once it returns.
func (f *FileSystem) prune(dir string, keep func(string) bool) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}

	empty := true
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if e.IsDir() {
			gone, err := f.prune(p, keep)
			if err != nil {
				return false, err
			}
			if !gone {
				empty = false
			}
			continue
		}
		if keep(e.Name()) {
			empty = false
			continue
		}
		if err := f.retry(func() error { return os.Remove(p) }); err != nil {
			return false, err
		}
	}

	if !empty {
		return false, nil
	}
	return true, f.retry(func() error { return os.Remove(dir) })
}

// retry runs op until it succeeds, fails with a non-transient error, or the
// extra attempts are used up. A missing path counts as success.
func (f *FileSystem) retry(op func() error) error {
	var err error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			f.sleep(time.Duration(attempt) * retryDelay)
		}
		err = op()
		if err == nil || errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		if !isTransient(err) {
			return err
		}
	}
	return err
}
