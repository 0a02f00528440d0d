package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// OpenSecureFile opens a regular file through an os.Root scoped to its parent
// directory so the final path element cannot escape it. The caller closes the
// returned file.
func OpenSecureFile(path string) (*os.File, error) {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	root, err := os.OpenRoot(filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("cannot create root for directory: %w", err)
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			log.Warnf("failed to close root: %v", closeErr)
		}
	}()

	name := filepath.Base(absPath)
	info, err := root.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file")
	}

	file, err := root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return file, nil
}

// ReadSecureFile reads a whole file opened with OpenSecureFile.
func ReadSecureFile(path string) ([]byte, error) {
	file, err := OpenSecureFile(path)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(file, "file")

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func closeQuietly(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		log.Warnf("failed to close %s: %v", what, err)
	}
}
