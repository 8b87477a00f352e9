package installer

import (
	"encoding/json"
	"fmt"

	"binstrap/internal/logger"
)

// githubRelease is the subset of a GitHub release JSON document the
// resolver reads.
type githubRelease struct {
	TagName string `json:"tag_name"`
}

// githubTag is one entry of the repository tags listing.
type githubTag struct {
	Name string `json:"name"`
}

// Resolver turns a requested version into a concrete release tag.
type Resolver struct {
	apiBase string
	fetcher *Fetcher
}

func NewResolver(apiBase string, fetcher *Fetcher) *Resolver {
	return &Resolver{apiBase: apiBase, fetcher: fetcher}
}

// Resolve returns the tag to install. An explicit version passes
// through untouched with no network traffic. "latest" walks three
// lookups in order and takes the first non-empty tag:
//
//  1. the repository's latest-release endpoint,
//  2. the first entry of the full releases listing,
//  3. the first entry of the tags listing, which is not ordered by
//     recency and exists only as a last resort.
//
// Each lookup gets the fetcher's full retry budget; a lookup that
// still fails or yields no tag moves resolution to the next one.
func (r *Resolver) Resolve(repo, version string) (string, error) {
	if version != "" && version != "latest" {
		logger.Debug("[DEBUG] Using explicit version %s for %s\n", version, repo)
		return version, nil
	}

	if tag := r.latestRelease(repo); tag != "" {
		return tag, nil
	}
	logger.Debug("[DEBUG] Latest-release lookup empty for %s, trying release listing\n", repo)
	if tag := r.firstRelease(repo); tag != "" {
		return tag, nil
	}
	logger.Debug("[DEBUG] Release listing empty for %s, trying tags\n", repo)
	if tag := r.firstTag(repo); tag != "" {
		logger.Warn("[WARN] Falling back to the tags listing for %s; the newest tag may not be first\n", repo)
		return tag, nil
	}

	return "", &ResolutionError{
		Repository: repo,
		Cause:      "no releases found or network unreachable",
	}
}

func (r *Resolver) latestRelease(repo string) string {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", r.apiBase, repo)
	body, err := r.fetcher.FetchBytes(url)
	if err != nil {
		logger.Debug("[DEBUG] Latest-release lookup failed: %v\n", err)
		return ""
	}

	var release githubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		logger.Debug("[DEBUG] Failed to decode latest-release JSON: %v\n", err)
		return ""
	}
	return release.TagName
}

func (r *Resolver) firstRelease(repo string) string {
	url := fmt.Sprintf("%s/repos/%s/releases", r.apiBase, repo)
	body, err := r.fetcher.FetchBytes(url)
	if err != nil {
		logger.Debug("[DEBUG] Release listing failed: %v\n", err)
		return ""
	}

	var releases []githubRelease
	if err := json.Unmarshal(body, &releases); err != nil {
		logger.Debug("[DEBUG] Failed to decode release listing JSON: %v\n", err)
		return ""
	}
	if len(releases) == 0 {
		return ""
	}
	return releases[0].TagName
}

func (r *Resolver) firstTag(repo string) string {
	url := fmt.Sprintf("%s/repos/%s/tags", r.apiBase, repo)
	body, err := r.fetcher.FetchBytes(url)
	if err != nil {
		logger.Debug("[DEBUG] Tags listing failed: %v\n", err)
		return ""
	}

	var tags []githubTag
	if err := json.Unmarshal(body, &tags); err != nil {
		logger.Debug("[DEBUG] Failed to decode tags JSON: %v\n", err)
		return ""
	}
	if len(tags) == 0 {
		return ""
	}
	return tags[0].Name
}
