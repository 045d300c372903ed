// Package osutil holds operating system constants shared across packages
package osutil

import "os"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const (
	DirPermission  os.FileMode = 0o755
	FilePermission os.FileMode = 0o600
)

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
