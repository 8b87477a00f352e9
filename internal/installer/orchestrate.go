package installer

import (
	"errors"
	"fmt"
	"os"

	"binstrap/internal/config"
	"binstrap/internal/logger"
	"binstrap/internal/platform"
)

// Pipeline wires the full bootstrap flow for one run: platform
// detection, install directory selection, version resolution, the
// download, optional archive extraction and the final install. It
// stops at the first failure and leaves the destination untouched
// unless the whole run succeeds.
type Pipeline struct {
	cfg     config.Settings
	plat    platform.Platform
	fetcher *Fetcher
}

// NewPipeline assembles a run from explicit settings. The download
// client is selected here, so a configuration that leaves no usable
// client fails before any work is done.
func NewPipeline(cfg config.Settings) (*Pipeline, error) {
	fetcher, err := NewFetcher(cfg.HTTPClient)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, plat: platform.Detect(), fetcher: fetcher}, nil
}

// Run executes the pipeline and returns where the binary landed.
func (pl *Pipeline) Run() (Outcome, error) {
	cfg := pl.cfg
	tool := cfg.ToolName()

	if !pl.plat.Supported() {
		return Outcome{}, fmt.Errorf("%w: os=%q arch=%q",
			ErrUnsupportedPlatform, pl.plat.RawOS, pl.plat.RawArch)
	}
	logger.Info("[INFO] Installing %s for %s\n", tool, pl.plat)

	// Directory selection runs before any network traffic so
	// permission problems surface immediately.
	tgt, err := SelectTarget(cfg.InstallDir, pl.plat, tool)
	if err != nil {
		return Outcome{}, err
	}
	logger.Debug("[DEBUG] Install target is %s\n", tgt.FinalPath)

	resolver := NewResolver(cfg.APIBase, pl.fetcher)
	tag, err := resolver.Resolve(cfg.Repository, cfg.Version)
	if err != nil {
		return Outcome{}, err
	}
	logger.Info("[INFO] Resolved %s version %s\n", cfg.Repository, tag)

	art := LocateArtifact(cfg, pl.plat, tag)
	logger.Debug("[DEBUG] Artifact URL is %s\n", art.URL)

	wd, err := newWorkdir()
	if err != nil {
		return Outcome{}, err
	}
	defer wd.cleanup()

	staged := wd.path(art.Filename)
	logger.Info("[INFO] Downloading %s...\n", art.Filename)
	if err := pl.fetcher.FetchFile(art.URL, staged); err != nil {
		return Outcome{}, err
	}

	if isArchive(art.Filename) {
		extractDir := wd.path("extracted")
		if err := os.MkdirAll(extractDir, 0o755); err != nil {
			return Outcome{}, fmt.Errorf("create extraction directory: %w", err)
		}
		if err := extractArchive(staged, extractDir); err != nil {
			return Outcome{}, fmt.Errorf("extract %s: %w", art.Filename, err)
		}
		staged, err = findBinary(extractDir, tool+pl.plat.ExeSuffix())
		if err != nil {
			return Outcome{}, err
		}
	}

	out, err := installBinary(staged, tgt, pl.plat)
	if err != nil {
		return Outcome{}, err
	}

	logger.Info("[INFO] Installed %s %s to %s\n", tool, tag, out.Path)
	if !out.OnPath {
		logger.Warn("[WARN] %s is not on your PATH.\n", tgt.Dir)
		logger.Warn("[WARN] Add it by appending this line to %s:\n", shellProfile())
		logger.Warn("[WARN]   export PATH=\"%s:$PATH\"\n", tgt.Dir)
	}
	return out, nil
}

// Remediation maps a pipeline failure to follow-up advice the CLI
// prints alongside the error. Unrecognized errors get no advice.
func Remediation(err error) []string {
	var dirErr *DirectoryError
	var resErr *ResolutionError
	var fetchErr *FetchError

	switch {
	case errors.Is(err, ErrUnsupportedPlatform):
		return []string{"binstrap supports linux, macos and windows on x64 and arm64"}
	case errors.As(err, &dirErr):
		advice := []string{"point --dir (or BINSTRAP_INSTALL_DIR) at a directory you can write to"}
		if !elevated() {
			advice = append(advice, "or re-run with elevated privileges, e.g. under sudo")
		}
		return advice
	case errors.Is(err, ErrNoClient):
		return []string{"install curl, or set http_client to native in the config"}
	case errors.As(err, &resErr):
		return []string{
			fmt.Sprintf("check that %q is spelled correctly and has published releases", resErr.Repository),
			"check your network connection and proxy settings",
		}
	case errors.As(err, &fetchErr):
		return []string{
			"check your network connection and proxy settings",
			"the release host may be briefly unavailable; try again in a few minutes",
		}
	}
	return nil
}
