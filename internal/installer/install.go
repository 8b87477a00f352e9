package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"binstrap/internal/logger"
	"binstrap/internal/platform"
)

// Outcome describes where the binary landed.
type Outcome struct {
	Path   string
	OnPath bool
}

// installBinary moves the staged binary into its final location. The
// staged file gets execute permission first (except on windows), is
// moved rather than copied, and is verified after the move. On any
// failure the destination is left untouched.
func installBinary(staged string, tgt Target, p platform.Platform) (Outcome, error) {
	if p.OS != platform.OSWindows {
		if err := os.Chmod(staged, 0o755); err != nil {
			return Outcome{}, fmt.Errorf("make %s executable: %w", staged, err)
		}
	}

	if err := moveFile(staged, tgt.FinalPath); err != nil {
		return Outcome{}, fmt.Errorf("move binary into %s: %w", tgt.Dir, err)
	}

	if err := verifyInstalled(tgt.FinalPath, p); err != nil {
		return Outcome{}, err
	}

	return Outcome{Path: tgt.FinalPath, OnPath: dirOnPath(tgt.Dir)}, nil
}

// moveFile renames src onto dst. When the rename fails, typically
// because src and dst live on different filesystems, it copies through
// a temporary file in dst's directory and renames that, keeping the
// appearance at dst atomic.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	logger.Debug("[DEBUG] Direct rename to %s failed, copying across filesystems\n", dst)
	return copyMove(src, dst)
}

func copyMove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".binstrap-move-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn("[WARN] Failed to remove temporary file %s: %v\n", tmpName, rmErr)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copy to temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}

	if rmErr := os.Remove(src); rmErr != nil {
		logger.Debug("[DEBUG] Failed to remove source after copy: %v\n", rmErr)
	}
	return nil
}

// verifyInstalled confirms the binary exists at path. A missing file
// is fatal. On non-windows platforms a stripped execute bit is
// restored rather than treated as a failure.
func verifyInstalled(path string, p platform.Platform) error {
	info, err := os.Stat(path)
	if err != nil {
		return &VerificationError{Path: path, Err: err}
	}
	if p.OS == platform.OSWindows {
		return nil
	}
	if info.Mode().Perm()&0o111 == 0 {
		logger.Warn("[WARN] Execute permission was stripped from %s, restoring it\n", path)
		if err := os.Chmod(path, 0o755); err != nil {
			return &VerificationError{Path: path, Err: fmt.Errorf("restore execute permission: %w", err)}
		}
	}
	return nil
}

// dirOnPath reports whether dir is already one of the PATH entries.
func dirOnPath(dir string) bool {
	clean := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == clean {
			return true
		}
	}
	return false
}

// shellProfile names the rc file PATH additions belong in, based on
// the user's shell.
func shellProfile() string {
	shell := os.Getenv("SHELL")
	logger.Debug("[DEBUG] Detected shell environment: %s\n", shell)

	switch {
	case strings.Contains(shell, "zsh"):
		return "~/.zshrc"
	case strings.Contains(shell, "bash"):
		return "~/.bashrc"
	}
	return "~/.profile"
}
