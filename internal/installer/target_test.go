package installer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"binstrap/internal/platform"
)

var linuxPlat = platform.Classify("Linux", "x86_64")

func TestSelectTargetOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tools", "bin")

	tgt, err := SelectTarget(dir, linuxPlat, "widget")
	if err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}
	if tgt.Dir != dir {
		t.Errorf("Dir = %q, want %q", tgt.Dir, dir)
	}
	if tgt.FinalPath != filepath.Join(dir, "widget") {
		t.Errorf("FinalPath = %q", tgt.FinalPath)
	}
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		t.Errorf("override directory was not created: %v", statErr)
	}
}

func TestSelectTargetOverrideUnwritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	parent := t.TempDir()
	if err := os.Chmod(parent, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	dir := filepath.Join(parent, "bin")
	_, err := SelectTarget(dir, linuxPlat, "widget")

	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error = %v, want DirectoryError", err)
	}
	if dirErr.Dir != dir {
		t.Errorf("Dir = %q, want %q", dirErr.Dir, dir)
	}
}

func TestSelectTargetUserDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tgt, err := SelectTarget("", linuxPlat, "widget")
	if err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}
	want := filepath.Join(home, ".local", "bin")
	if tgt.Dir != want {
		t.Errorf("Dir = %q, want %q", tgt.Dir, want)
	}
}

func TestSelectTargetWindowsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	winPlat := platform.Classify("MINGW64_NT-10.0", "x86_64")
	tgt, err := SelectTarget("", winPlat, "widget")
	if err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}
	if tgt.Dir != filepath.Join(home, "bin") {
		t.Errorf("Dir = %q", tgt.Dir)
	}
	if filepath.Base(tgt.FinalPath) != "widget.exe" {
		t.Errorf("FinalPath = %q, want .exe name", tgt.FinalPath)
	}
}

func TestSelectTargetFallsBackWhenUserDirUnusable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	// Make the user-local default unusable and point the privileged
	// fallback at a writable stand-in.
	home := t.TempDir()
	if err := os.Chmod(home, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(home, 0o755) })
	t.Setenv("HOME", home)

	fallback := filepath.Join(t.TempDir(), "usr-local-bin")
	orig := privilegedFallbackDir
	privilegedFallbackDir = fallback
	t.Cleanup(func() { privilegedFallbackDir = orig })

	tgt, err := SelectTarget("", linuxPlat, "widget")
	if err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}
	if tgt.Dir != fallback {
		t.Errorf("Dir = %q, want fallback %q", tgt.Dir, fallback)
	}
}

func TestSelectTargetBothUnusable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	home := t.TempDir()
	if err := os.Chmod(home, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(home, 0o755) })
	t.Setenv("HOME", home)

	blocked := t.TempDir()
	if err := os.Chmod(blocked, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(blocked, 0o755) })

	orig := privilegedFallbackDir
	privilegedFallbackDir = filepath.Join(blocked, "bin")
	t.Cleanup(func() { privilegedFallbackDir = orig })

	_, err := SelectTarget("", linuxPlat, "widget")
	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error = %v, want DirectoryError", err)
	}
}

func TestPrepareDirProbeCleanedUp(t *testing.T) {
	dir := t.TempDir()
	if err := prepareDir(dir); err != nil {
		t.Fatalf("prepareDir: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}
