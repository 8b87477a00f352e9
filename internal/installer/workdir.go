package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"binstrap/internal/logger"
)

// workdir is the scratch directory one run downloads and extracts
// into. It is created fresh per run and removed on every exit path,
// so an aborted run leaves nothing behind.
type workdir struct {
	root string
}

func newWorkdir() (workdir, error) {
	root, err := os.MkdirTemp("", "binstrap-*")
	if err != nil {
		return workdir{}, fmt.Errorf("create working directory: %w", err)
	}
	logger.Debug("[DEBUG] Created working directory %s\n", root)
	return workdir{root: root}, nil
}

// path returns the location of name inside the working directory.
func (w workdir) path(name string) string {
	return filepath.Join(w.root, name)
}

// cleanup removes the directory and everything staged inside it.
func (w workdir) cleanup() {
	if w.root == "" {
		return
	}
	if err := os.RemoveAll(w.root); err != nil {
		logger.Warn("[WARN] Failed to remove working directory %s: %v\n", w.root, err)
	}
}
