package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"binstrap/internal/logger"
)

// DefaultConfigName is the per-user config file looked up in the home
// directory when no --config flag is given.
const DefaultConfigName = ".binstrap.yaml"

// Load builds the run configuration by layering, weakest first:
// built-in defaults, the YAML config file, then environment variables.
// Flag overrides are applied by the caller on top of the result.
//
// An explicitly given path must exist and parse; the default per-user
// file is optional and silently skipped when absent.
func Load(path string) (Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultConfigName)
		}
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			logger.Debug("[DEBUG] Loaded config file %s\n", path)
		case explicit:
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			logger.Debug("[DEBUG] No config file at %s, using defaults\n", path)
		}
	}

	s.applyEnv()
	s.normalize()
	return s, nil
}

// applyEnv lets BINSTRAP_* environment variables override file values.
func (s *Settings) applyEnv() {
	s.Repository = envOverride("BINSTRAP_REPO", s.Repository)
	s.Version = envOverride("BINSTRAP_VERSION", s.Version)
	s.InstallDir = envOverride("BINSTRAP_INSTALL_DIR", s.InstallDir)
	s.Tool = envOverride("BINSTRAP_TOOL", s.Tool)
	s.AssetTemplate = envOverride("BINSTRAP_ASSET_TEMPLATE", s.AssetTemplate)
	s.APIBase = envOverride("BINSTRAP_API_BASE", s.APIBase)
	s.DownloadBase = envOverride("BINSTRAP_DOWNLOAD_BASE", s.DownloadBase)
	s.HTTPClient = envOverride("BINSTRAP_HTTP_CLIENT", s.HTTPClient)
}

// normalize cleans up values no layer should have to re-check:
// empty fields fall back to defaults and base URLs lose their
// trailing slash so URL building can join with "/".
func (s *Settings) normalize() {
	if s.Repository == "" {
		s.Repository = DefaultRepository
	}
	if s.Version == "" {
		s.Version = DefaultVersion
	}
	if s.AssetTemplate == "" {
		s.AssetTemplate = DefaultAssetTemplate
	}
	if s.APIBase == "" {
		s.APIBase = DefaultAPIBase
	}
	if s.DownloadBase == "" {
		s.DownloadBase = DefaultDownloadBase
	}
	if s.HTTPClient == "" {
		s.HTTPClient = DefaultHTTPClient
	}
	s.APIBase = strings.TrimRight(s.APIBase, "/")
	s.DownloadBase = strings.TrimRight(s.DownloadBase, "/")
}

func envOverride(key, current string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return current
}
