// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DirPermissions is used for directories the tool creates (rwxr-x---).
const DirPermissions = 0o750

// ErrNotDirectory indicates a path exists but is not a directory.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// EnsureDir creates dir and its parents when missing.
// It reports whether the directory had to be created.
func EnsureDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, err
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return false, err
	}
	return true, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "tiles" -> false (name)
//   - "./tiles.yaml" -> true (relative path)
//   - "/etc/uwptiles/tiles.yaml" -> true (absolute)
//   - "C:\config\tiles.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
