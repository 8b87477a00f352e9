package installer

import (
	"errors"
	"fmt"
)

// Every pipeline failure is terminal for the run: the binary is either
// correctly installed or the destination is untouched. These types let
// the CLI map a failure to remediation advice with errors.Is/As.

// ErrUnsupportedPlatform marks a machine whose OS or architecture is
// outside the supported set. The wrapping error carries the raw values.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrNoClient means no usable download client remained after applying
// the http_client preference.
var ErrNoClient = errors.New("no usable download client")

// DirectoryError reports an install directory that could not be
// created or written.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("install directory %s is not usable: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// ResolutionError reports that a version request could not be mapped
// to a concrete release tag.
type ResolutionError struct {
	Repository string
	Cause      string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve version for %s: %s", e.Repository, e.Cause)
}

// FetchError reports a network operation that failed every attempt the
// retry policy allowed.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch of %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// VerificationError reports that the installed binary did not pass the
// post-install check. Retrying cannot help; something in the
// environment interfered with the move.
type VerificationError struct {
	Path string
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("installed binary failed verification at %s: %v", e.Path, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }
