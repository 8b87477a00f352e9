package platform

import (
	"os/exec"
	"runtime"
	"strings"

	"binstrap/internal/logger"
)

// Normalized operating system and architecture names used in release
// asset filenames. Unknown marks values outside the supported set.
const (
	OSLinux   = "linux"
	OSMacOS   = "macos"
	OSWindows = "windows"

	ArchX64   = "x64"
	ArchARM64 = "arm64"

	Unknown = "unknown"
)

// Platform identifies the machine a binary is being installed onto.
// OS and Arch hold the normalized names; RawOS and RawArch keep the
// values they were derived from so error messages can show them.
type Platform struct {
	OS      string
	Arch    string
	RawOS   string
	RawArch string
}

// Supported reports whether both fields resolved to a known value.
func (p Platform) Supported() bool {
	return p.OS != Unknown && p.Arch != Unknown
}

// ExeSuffix returns the executable filename suffix for the platform.
func (p Platform) ExeSuffix() string {
	if p.OS == OSWindows {
		return ".exe"
	}
	return ""
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// Classify maps raw OS and architecture identifiers, as reported by
// `uname -s` and `uname -m`, onto the normalized names. OS matching is
// a case-sensitive prefix match; architecture matching is exact.
// Values outside the tables map to Unknown.
func Classify(rawOS, rawArch string) Platform {
	p := Platform{OS: Unknown, Arch: Unknown, RawOS: rawOS, RawArch: rawArch}

	switch {
	case strings.HasPrefix(rawOS, "Linux"):
		p.OS = OSLinux
	case strings.HasPrefix(rawOS, "Darwin"):
		p.OS = OSMacOS
	case strings.HasPrefix(rawOS, "CYGWIN"),
		strings.HasPrefix(rawOS, "MINGW"),
		strings.HasPrefix(rawOS, "MSYS"):
		p.OS = OSWindows
	}

	switch rawArch {
	case "x86_64", "amd64":
		p.Arch = ArchX64
	case "arm64", "aarch64":
		p.Arch = ArchARM64
	}

	return p
}

// Detect identifies the current machine. It prefers the output of
// `uname` so that environments like MSYS and Cygwin are recognized by
// their uname names, and falls back to the runtime constants when
// uname is not available (native Windows, minimal containers).
func Detect() Platform {
	if _, err := exec.LookPath("uname"); err != nil {
		logger.Debug("[DEBUG] uname not found, using runtime platform values\n")
		return FromRuntime()
	}

	rawOS, errOS := unameValue("-s")
	rawArch, errArch := unameValue("-m")
	if errOS != nil || errArch != nil {
		logger.Debug("[DEBUG] uname failed (%v, %v), using runtime platform values\n", errOS, errArch)
		return FromRuntime()
	}

	p := Classify(rawOS, rawArch)
	logger.Debug("[DEBUG] Detected platform %s from uname %q/%q\n", p, rawOS, rawArch)
	return p
}

// FromRuntime builds a Platform from the Go runtime constants.
func FromRuntime() Platform {
	p := Platform{OS: Unknown, Arch: Unknown, RawOS: runtime.GOOS, RawArch: runtime.GOARCH}

	switch runtime.GOOS {
	case "linux":
		p.OS = OSLinux
	case "darwin":
		p.OS = OSMacOS
	case "windows":
		p.OS = OSWindows
	}

	switch runtime.GOARCH {
	case "amd64":
		p.Arch = ArchX64
	case "arm64":
		p.Arch = ArchARM64
	}

	return p
}

func unameValue(flag string) (string, error) {
	out, err := exec.Command("uname", flag).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
