package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"binstrap/internal/logger"
	"binstrap/internal/platform"
)

// privilegedFallbackDir is tried when the user-local default cannot be
// prepared. Writing it normally needs elevated privileges.
var privilegedFallbackDir = "/usr/local/bin"

// Target is the selected install location for one run.
type Target struct {
	Dir       string
	FinalPath string
}

// SelectTarget picks and prepares the install directory. It runs
// before any network work so permission problems fail the run early.
//
// An explicit override is used as given, with no fallback. Otherwise
// the user-local default is tried first ($HOME\bin on windows,
// ~/.local/bin elsewhere) and /usr/local/bin second. A directory is
// accepted once it exists and a probe file can be written to it.
func SelectTarget(override string, p platform.Platform, tool string) (Target, error) {
	if override != "" {
		if err := prepareDir(override); err != nil {
			return Target{}, &DirectoryError{Dir: override, Err: err}
		}
		logger.Debug("[DEBUG] Using install directory override %s\n", override)
		return newTarget(override, p, tool), nil
	}

	userDir, err := userLocalDir(p)
	if err != nil {
		logger.Warn("[WARN] Cannot determine home directory: %v. Falling back to %s\n",
			err, privilegedFallbackDir)
	} else if prepErr := prepareDir(userDir); prepErr != nil {
		logger.Warn("[WARN] Cannot use %s: %v. Falling back to %s\n",
			userDir, prepErr, privilegedFallbackDir)
	} else {
		return newTarget(userDir, p, tool), nil
	}

	if err := prepareDir(privilegedFallbackDir); err != nil {
		return Target{}, &DirectoryError{Dir: privilegedFallbackDir, Err: err}
	}
	return newTarget(privilegedFallbackDir, p, tool), nil
}

func newTarget(dir string, p platform.Platform, tool string) Target {
	return Target{
		Dir:       dir,
		FinalPath: filepath.Join(dir, tool+p.ExeSuffix()),
	}
}

// userLocalDir returns the per-user default install directory.
func userLocalDir(p platform.Platform) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if p.OS == platform.OSWindows {
		return filepath.Join(home, "bin"), nil
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// prepareDir creates dir if missing and proves it is writable by
// creating and removing a probe file.
func prepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	probe, err := os.CreateTemp(dir, ".binstrap-probe-*")
	if err != nil {
		return fmt.Errorf("directory is not writable: %w", err)
	}
	name := probe.Name()
	if cerr := probe.Close(); cerr != nil {
		logger.Warn("[WARN] Failed to close probe file %s: %v\n", name, cerr)
	}
	if rmErr := os.Remove(name); rmErr != nil {
		logger.Warn("[WARN] Failed to remove probe file %s: %v\n", name, rmErr)
	}
	return nil
}

// elevated reports whether the process runs with effective root
// privileges. Always false on windows, where Geteuid returns -1.
func elevated() bool {
	return os.Geteuid() == 0
}
