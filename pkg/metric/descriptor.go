package metric

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
)

// HostKind identifies the remote host family an artifact lives on.
type HostKind string

const (
	HostGitHub      HostKind = "github"
	HostHuggingFace HostKind = "huggingface"
	HostGeneric     HostKind = "generic"
	HostNone        HostKind = "none"
)

// DefaultBranches are tried in order when the caller does not name any.
var DefaultBranches = []string{"main", "master"}

// Descriptor identifies one artifact to rate. It is built once by the
// caller and not mutated afterwards.
type Descriptor struct {
	LocalDir string   `json:"local_dir,omitempty" yaml:"localDir,omitempty"`
	Host     HostKind `json:"host" yaml:"host"`
	Owner    string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Repo     string   `json:"repo,omitempty" yaml:"repo,omitempty"`
	Branches []string `json:"branches,omitempty" yaml:"branches,omitempty"`

	// BaseURL is the raw-content base used for generic hosts, tried as
	// a last resort for the other kinds when set.
	BaseURL string `json:"base_url,omitempty" yaml:"baseUrl,omitempty"`
}

// NewDescriptor validates that the descriptor points at something
// resolvable. Malformed descriptors are rejected here rather than deep
// inside resolution.
func NewDescriptor(localDir string, host HostKind, owner, repo string, branches []string) (*Descriptor, error) {
	if host == "" {
		host = HostNone
	}

	hasHost := host != HostNone && owner != "" && repo != ""
	if localDir == "" && !hasHost {
		return nil, errors.New("descriptor requires a local dir or a host/owner/repo triple")
	}

	return &Descriptor{
		LocalDir: localDir,
		Host:     host,
		Owner:    owner,
		Repo:     repo,
		Branches: branches,
	}, nil
}

// Name returns a stable display name for the artifact.
func (d *Descriptor) Name() string {
	if d.Owner != "" && d.Repo != "" {
		return d.Owner + "/" + d.Repo
	}
	if d.LocalDir != "" {
		return filepath.Base(d.LocalDir)
	}
	return d.BaseURL
}

// URL returns the canonical browse URL for the artifact, empty for
// local-only descriptors.
func (d *Descriptor) URL() string {
	switch d.Host {
	case HostGitHub:
		return "https://github.com/" + d.Owner + "/" + d.Repo
	case HostHuggingFace:
		return "https://huggingface.co/" + d.Owner + "/" + d.Repo
	case HostGeneric:
		return d.BaseURL
	}
	return ""
}

func (d *Descriptor) branches() []string {
	if len(d.Branches) > 0 {
		return d.Branches
	}
	return DefaultBranches
}

// ParseArtifactURL builds a descriptor from a GitHub or Hugging Face
// URL, a bare "owner/repo" Hugging Face id, or any other HTTPS base
// URL (treated as a generic host).
func ParseArtifactURL(raw string) (*Descriptor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("artifact URL or id is required")
	}

	if !strings.Contains(raw, "://") {
		// Bare "owner/repo" ids are Hugging Face convention.
		owner, repo, ok := splitOwnerRepo(raw)
		if !ok {
			return nil, errors.New("expected a URL or an owner/repo id: " + raw)
		}
		return NewDescriptor("", HostHuggingFace, owner, repo, nil)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid artifact URL: " + raw)
	}

	switch {
	case strings.HasSuffix(u.Host, "github.com"):
		owner, repo, ok := splitOwnerRepo(u.Path)
		if !ok {
			return nil, errors.New("GitHub URL missing owner/repo: " + raw)
		}
		return NewDescriptor("", HostGitHub, owner, repo, nil)
	case strings.HasSuffix(u.Host, "huggingface.co"):
		owner, repo, ok := splitOwnerRepo(u.Path)
		if !ok {
			return nil, errors.New("Hugging Face URL missing owner/repo: " + raw)
		}
		return NewDescriptor("", HostHuggingFace, owner, repo, nil)
	}

	return &Descriptor{
		Host:    HostGeneric,
		BaseURL: strings.TrimRight(raw, "/"),
	}, nil
}

// splitOwnerRepo extracts the first two path segments, dropping any
// trailing "/tree/<branch>" style suffix and a ".git" extension.
func splitOwnerRepo(path string) (owner, repo string, ok bool) {
	parts := make([]string, 0, 2)
	for _, p := range strings.Split(strings.Trim(path, "/"), "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
