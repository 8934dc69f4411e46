// Package files provides the filesystem utilities batch jobs lean on:
// extract-artifact validation, checksums, directory scans, random data
// generation, and JSON/text read-write helpers.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ValidExtensions lists the artifact types extract jobs produce and consume.
var ValidExtensions = []string{".csv", ".gzip", ".bz2", ".json"}

// avoidItems marks paths that are config or bookkeeping artifacts rather
// than extract data; directory scans skip them.
var avoidItems = []string{
	".keep",
	"touch",
	".lock",
	".txt",
	".DS_Store",
	"test_",
	".toml",
	".properties",
}

// Touch creates the file and any missing parent directories. It reports
// whether the file was newly created; an existing file is left untouched.
func Touch(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("touch %q: %w", path, err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return false, fmt.Errorf("touch %q: %w", path, err)
	}
	return true, f.Close()
}

// IsValidFile reports whether path is an extract artifact worth processing:
// an existing regular file with a known extension and more than one byte of
// data.
func IsValidFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if !slices.Contains(ValidExtensions, filepath.Ext(path)) {
		return false
	}
	return info.Size() > 1
}

// Size returns the size in bytes of an extract artifact, or zero when the
// path is missing, a directory, or not a known artifact type.
func Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	if !slices.Contains(ValidExtensions, filepath.Ext(path)) {
		return 0
	}
	return info.Size()
}

// UUIDTag generates a globally unique tag truncated to n characters.
// Lengths outside the UUID's 36 characters fall back to 8.
func UUIDTag(n int) string {
	tag := uuid.NewString()
	if n <= 0 || n > len(tag) {
		n = 8
	}
	return tag[:n]
}

// notConfig reports whether the path is free of config/bookkeeping markers.
func notConfig(path string) bool {
	for _, item := range avoidItems {
		if strings.Contains(path, item) {
			return false
		}
	}
	return true
}

// DirsByKeyword returns the sorted names of direct subdirectories whose name
// contains the keyword, skipping config artifacts. The scan is not recursive.
func DirsByKeyword(dir, keyword string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.Contains(entry.Name(), keyword) {
			continue
		}
		if notConfig(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// FilesByExt returns the sorted absolute paths of direct children with the
// given extension, skipping config artifacts. The scan is not recursive.
func FilesByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		if !notConfig(entry.Name()) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	slices.Sort(paths)
	return paths, nil
}

// PurgePriorExtract removes artifacts left over from prior ETL processing
// (every ValidExtensions file directly under dir) and returns the removed
// file names.
func PurgePriorExtract(dir string) ([]string, error) {
	var purged []string
	for _, ext := range ValidExtensions {
		paths, err := FilesByExt(dir, ext)
		if err != nil {
			return purged, err
		}
		for _, path := range paths {
			if err := os.Remove(path); err != nil {
				return purged, fmt.Errorf("purge %q: %w", path, err)
			}
			purged = append(purged, filepath.Base(path))
		}
	}
	return purged, nil
}

// EnsureNested joins sub-folders and a file name onto base, creating the
// directories and touching the file as needed, and returns the resulting
// path. Folder elements may themselves be comma-delimited lists.
func EnsureNested(base, filename string, folders ...string) (string, error) {
	parts := []string{base}
	for _, folder := range folders {
		for _, sub := range strings.Split(strings.ReplaceAll(folder, " ", ""), ",") {
			if sub != "" {
				parts = append(parts, sub)
			}
		}
	}
	parts = append(parts, filename)

	path := filepath.Join(parts...)
	if _, err := Touch(path); err != nil {
		return "", err
	}
	return path, nil
}
