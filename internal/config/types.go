package config

import (
	"path"
	"strings"
)

// Built-in defaults. The repository points at binstrap's own releases
// so a bare `binstrap install` bootstraps the tool itself.
const (
	DefaultRepository    = "binstrap/binstrap"
	DefaultVersion       = "latest"
	DefaultAssetTemplate = "{tool}-{os}-{arch}{ext}"
	DefaultAPIBase       = "https://api.github.com"
	DefaultDownloadBase  = "https://github.com"
	DefaultHTTPClient    = "auto"
)

// Settings carries one run's worth of installer configuration.
// It is assembled once by Load plus any flag overrides and passed
// around by value; nothing mutates it after the run starts.
type Settings struct {
	// Repository is the GitHub owner/name whose releases are installed.
	Repository string `yaml:"repository"`

	// Version is the requested version: "latest" or an explicit tag.
	Version string `yaml:"version"`

	// InstallDir, when set, overrides install directory selection.
	InstallDir string `yaml:"install_dir"`

	// Tool is the name of the installed binary. Empty means the
	// repository name tail.
	Tool string `yaml:"tool"`

	// AssetTemplate names the release asset. It understands the
	// placeholders {tool}, {os}, {arch} and {ext}.
	AssetTemplate string `yaml:"asset_template"`

	// APIBase and DownloadBase are the release API and asset hosts.
	// Overridable so tests and mirrors can redirect the pipeline.
	APIBase      string `yaml:"api_base"`
	DownloadBase string `yaml:"download_base"`

	// HTTPClient selects the download client: auto, native or curl.
	HTTPClient string `yaml:"http_client"`
}

// Defaults returns a Settings populated with the built-in defaults.
func Defaults() Settings {
	return Settings{
		Repository:    DefaultRepository,
		Version:       DefaultVersion,
		AssetTemplate: DefaultAssetTemplate,
		APIBase:       DefaultAPIBase,
		DownloadBase:  DefaultDownloadBase,
		HTTPClient:    DefaultHTTPClient,
	}
}

// ToolName returns the configured binary name, falling back to the
// tail of the repository (the name after the owner).
func (s Settings) ToolName() string {
	if s.Tool != "" {
		return s.Tool
	}
	return path.Base(strings.TrimSuffix(s.Repository, "/"))
}
