package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every BINSTRAP_* variable so ambient environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BINSTRAP_REPO", "BINSTRAP_VERSION", "BINSTRAP_INSTALL_DIR",
		"BINSTRAP_TOOL", "BINSTRAP_ASSET_TEMPLATE", "BINSTRAP_API_BASE",
		"BINSTRAP_DOWNLOAD_BASE", "BINSTRAP_HTTP_CLIENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir()) // no per-user config file

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Repository != DefaultRepository {
		t.Errorf("Repository = %q, want %q", s.Repository, DefaultRepository)
	}
	if s.Version != "latest" {
		t.Errorf("Version = %q, want latest", s.Version)
	}
	if s.APIBase != "https://api.github.com" {
		t.Errorf("APIBase = %q", s.APIBase)
	}
	if s.HTTPClient != "auto" {
		t.Errorf("HTTPClient = %q, want auto", s.HTTPClient)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "binstrap.yaml")
	content := strings.Join([]string{
		"repository: acme/widget",
		"version: v2.0.1",
		"install_dir: /opt/acme/bin",
		"api_base: https://github.internal/api/v3/",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Repository != "acme/widget" {
		t.Errorf("Repository = %q", s.Repository)
	}
	if s.Version != "v2.0.1" {
		t.Errorf("Version = %q", s.Version)
	}
	if s.InstallDir != "/opt/acme/bin" {
		t.Errorf("InstallDir = %q", s.InstallDir)
	}
	if s.APIBase != "https://github.internal/api/v3" {
		t.Errorf("APIBase = %q, want trailing slash trimmed", s.APIBase)
	}
	// Unset keys keep their defaults.
	if s.AssetTemplate != DefaultAssetTemplate {
		t.Errorf("AssetTemplate = %q", s.AssetTemplate)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "binstrap.yaml")
	if err := os.WriteFile(path, []byte("repository: acme/widget\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BINSTRAP_REPO", "acme/gadget")
	t.Setenv("BINSTRAP_VERSION", "  v3.0.0  ") // surrounding space is trimmed

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Repository != "acme/gadget" {
		t.Errorf("Repository = %q, want env override", s.Repository)
	}
	if s.Version != "v3.0.0" {
		t.Errorf("Version = %q, want trimmed env value", s.Version)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadDefaultFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	if _, err := Load(""); err != nil {
		t.Fatalf("missing per-user config should not error: %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("repository: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestToolName(t *testing.T) {
	tests := []struct {
		repo, tool, want string
	}{
		{"binstrap/binstrap", "", "binstrap"},
		{"acme/widget", "", "widget"},
		{"acme/widget/", "", "widget"},
		{"acme/widget", "wdg", "wdg"},
	}
	for _, tt := range tests {
		s := Settings{Repository: tt.repo, Tool: tt.tool}
		if got := s.ToolName(); got != tt.want {
			t.Errorf("ToolName(%q, %q) = %q, want %q", tt.repo, tt.tool, got, tt.want)
		}
	}
}
