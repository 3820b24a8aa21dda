package metric

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source records where a README was acquired from.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Readme is a resolved documentation blob. It lives only for the
// duration of one rating call.
type Readme struct {
	Text   string
	Source Source
}

// Fetcher is the HTTP capability injected into resolution. A nil
// Fetcher is a valid configuration: remote lookups are skipped and
// resolution becomes local-only.
type Fetcher interface {
	GetText(url string) (status int, body string, err error)
}

// Local candidates are tried in this exact order, case as listed.
var readmeNames = []string{"README.md", "README.rst", "README.txt", "README"}

// ResolveReadme locates README content for the descriptor, preferring
// the local directory over remote raw-content endpoints. It returns
// nil when every candidate fails and never returns an error: all I/O
// and decoding failures are treated as "source unavailable".
func ResolveReadme(d *Descriptor, f Fetcher) *Readme {
	if r := localReadme(d.LocalDir); r != nil {
		return r
	}

	if f == nil {
		slog.Debug("no HTTP capability, skipping remote readme lookup", "name", d.Name())
		return nil
	}

	for _, u := range remoteCandidates(d) {
		status, body, err := f.GetText(u)
		if err != nil {
			slog.Debug("readme fetch failed", "url", u, "error", err)
			continue
		}
		if status != http.StatusOK {
			slog.Debug("readme fetch miss", "url", u, "status", status)
			continue
		}
		return &Readme{Text: body, Source: SourceRemote}
	}

	return nil
}

func localReadme(dir string) *Readme {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	for _, name := range readmeNames {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		// Invalid byte sequences become replacement runes, a malformed
		// file never fails resolution.
		return &Readme{
			Text:   strings.ToValidUTF8(string(b), "�"),
			Source: SourceLocal,
		}
	}

	return nil
}

// remoteCandidates enumerates raw-content URLs in priority order:
// host-specific guesses per branch candidate first, then the generic
// base URL as a final fallback. Each URL is tried at most once.
func remoteCandidates(d *Descriptor) []string {
	urls := make([]string, 0, len(d.branches())+1)

	switch d.Host {
	case HostGitHub:
		for _, branch := range d.branches() {
			urls = append(urls, fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/README.md", d.Owner, d.Repo, branch))
		}
	case HostHuggingFace:
		for _, branch := range d.branches() {
			urls = append(urls, fmt.Sprintf("https://huggingface.co/%s/%s/raw/%s/README.md", d.Owner, d.Repo, branch))
		}
	}

	if d.BaseURL != "" {
		urls = append(urls, strings.TrimRight(d.BaseURL, "/")+"/README.md")
	}

	return urls
}
