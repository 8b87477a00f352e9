package installer

import (
	"fmt"
	"strings"

	"binstrap/internal/config"
	"binstrap/internal/platform"
)

// Artifact names one downloadable release asset.
type Artifact struct {
	Filename string
	URL      string
}

// LocateArtifact renders the asset filename for the platform and
// resolved tag and derives its download URL. The tag must already be
// resolved to a concrete value; the result is deterministic and
// involves no network traffic.
func LocateArtifact(cfg config.Settings, p platform.Platform, tag string) Artifact {
	name := renderAssetName(cfg.AssetTemplate, cfg.ToolName(), p)
	return Artifact{
		Filename: name,
		URL: fmt.Sprintf("%s/%s/releases/download/%s/%s",
			cfg.DownloadBase, cfg.Repository, tag, name),
	}
}

// renderAssetName expands the {tool}, {os}, {arch} and {ext}
// placeholders of an asset template. With the default template this
// yields <tool>-<os>-<arch>, plus .exe on windows.
func renderAssetName(template, tool string, p platform.Platform) string {
	if template == "" {
		template = config.DefaultAssetTemplate
	}
	r := strings.NewReplacer(
		"{tool}", tool,
		"{os}", p.OS,
		"{arch}", p.Arch,
		"{ext}", p.ExeSuffix(),
	)
	return r.Replace(template)
}
