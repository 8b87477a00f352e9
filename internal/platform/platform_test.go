package platform

import "testing"

func TestClassifyOS(t *testing.T) {
	tests := []struct {
		rawOS string
		want  string
	}{
		{"Linux", OSLinux},
		{"Linux 5.15.0-generic", OSLinux},
		{"Darwin", OSMacOS},
		{"CYGWIN_NT-10.0", OSWindows},
		{"MINGW64_NT-10.0-19045", OSWindows},
		{"MSYS_NT-10.0", OSWindows},
		{"FreeBSD", Unknown},
		{"SunOS", Unknown},
		{"linux", Unknown}, // matching is case-sensitive
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.rawOS, func(t *testing.T) {
			got := Classify(tt.rawOS, "x86_64")
			if got.OS != tt.want {
				t.Errorf("Classify(%q, _).OS = %q, want %q", tt.rawOS, got.OS, tt.want)
			}
			if got.RawOS != tt.rawOS {
				t.Errorf("Classify(%q, _).RawOS = %q", tt.rawOS, got.RawOS)
			}
		})
	}
}

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		rawArch string
		want    string
	}{
		{"x86_64", ArchX64},
		{"amd64", ArchX64},
		{"arm64", ArchARM64},
		{"aarch64", ArchARM64},
		{"i686", Unknown},
		{"armv7l", Unknown},
		{"X86_64", Unknown}, // exact match only
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.rawArch, func(t *testing.T) {
			got := Classify("Linux", tt.rawArch)
			if got.Arch != tt.want {
				t.Errorf("Classify(_, %q).Arch = %q, want %q", tt.rawArch, got.Arch, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Classify("Linux", "x86_64").Supported() {
		t.Error("Linux/x86_64 should be supported")
	}
	if Classify("SunOS", "x86_64").Supported() {
		t.Error("unknown OS should not be supported")
	}
	if Classify("Linux", "i686").Supported() {
		t.Error("unknown arch should not be supported")
	}
}

func TestExeSuffix(t *testing.T) {
	if got := Classify("MINGW64_NT-10.0", "x86_64").ExeSuffix(); got != ".exe" {
		t.Errorf("windows ExeSuffix = %q, want .exe", got)
	}
	if got := Classify("Linux", "x86_64").ExeSuffix(); got != "" {
		t.Errorf("linux ExeSuffix = %q, want empty", got)
	}
}

func TestString(t *testing.T) {
	if got := Classify("Darwin", "arm64").String(); got != "macos/arm64" {
		t.Errorf("String() = %q, want macos/arm64", got)
	}
}
