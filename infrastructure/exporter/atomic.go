package exporter

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicFile stages writes in a temp file beside the target and renames it
// into place on commit, so a failed export never leaves a truncated CSV.
type atomicFile struct {
	path    string
	tmpPath string
	file    *os.File
}

func createAtomicFile(path string) (*atomicFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error while creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".youtube_etl-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("error while creating temp file in %s: %w", dir, err)
	}

	return &atomicFile{
		path:    path,
		tmpPath: tmp.Name(),
		file:    tmp,
	}, nil
}

func (a *atomicFile) Write(p []byte) (int, error) {
	return a.file.Write(p)
}

func (a *atomicFile) Commit() error {
	if err := a.file.Sync(); err != nil {
		a.Abort()
		return fmt.Errorf("error while syncing %s: %w", a.tmpPath, err)
	}

	if err := a.file.Close(); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("error while closing %s: %w", a.tmpPath, err)
	}

	// CreateTemp uses 0600
	if err := os.Chmod(a.tmpPath, 0644); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("error while setting permissions on %s: %w", a.tmpPath, err)
	}

	if err := os.Rename(a.tmpPath, a.path); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("error while renaming %s to %s: %w", a.tmpPath, a.path, err)
	}

	return nil
}

func (a *atomicFile) Abort() {
	a.file.Close()
	os.Remove(a.tmpPath)
}
