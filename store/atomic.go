package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}

	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if err := tmp.Chmod(osutil.FilePermission); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("fsync %s: %w", tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil && runtime.GOOS == osutil.Windows && osutil.Exists(path) {
		// rename cannot replace an existing file on Windows
		if rmErr := os.Remove(path); rmErr == nil {
			err = os.Rename(tmpPath, path)
		}
	}

	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s -> %s: %w", tmpPath, path, err)
	}

	return nil
}

// backup copies the current contents of path to path.bak, ignoring
// failures.
func backup(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	_ = writeFileAtomic(path+".bak", data)
}
