package metric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponse struct {
	status int
	body   string
}

// fakeFetcher implements Fetcher from a fixed URL->response map and
// records every URL it was asked for.
type fakeFetcher struct {
	responses map[string]fakeResponse
	calls     []string
}

func (f *fakeFetcher) GetText(url string) (int, string, error) {
	f.calls = append(f.calls, url)
	if r, ok := f.responses[url]; ok {
		return r.status, r.body, nil
	}
	return 404, "", nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestLocalReadmePriorityOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.rst", "rst content")
	writeFile(t, dir, "README.md", "md content")
	writeFile(t, dir, "README", "bare content")

	d, err := NewDescriptor(dir, HostNone, "", "", nil)
	require.NoError(t, err)

	r := ResolveReadme(d, nil)
	require.NotNil(t, r)
	assert.Equal(t, "md content", r.Text)
	assert.Equal(t, SourceLocal, r.Source)
}

func TestLocalReadmeInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte{0xff, 0xfe, 'h', 'i'}, 0600))

	d, err := NewDescriptor(dir, HostNone, "", "", nil)
	require.NoError(t, err)

	r := ResolveReadme(d, nil)
	require.NotNil(t, r)
	assert.Contains(t, r.Text, "hi")
	assert.Contains(t, r.Text, "�")
}

func TestLocalReadmeTakesPriorityOverRemote(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "local wins")

	f := &fakeFetcher{responses: map[string]fakeResponse{
		"https://raw.githubusercontent.com/o/r/main/README.md": {200, "remote"},
	}}

	d, err := NewDescriptor(dir, HostGitHub, "o", "r", nil)
	require.NoError(t, err)

	r := ResolveReadme(d, f)
	require.NotNil(t, r)
	assert.Equal(t, "local wins", r.Text)
	assert.Equal(t, SourceLocal, r.Source)
	assert.Empty(t, f.calls, "no network call expected when local content exists")
}

func TestRemoteReadmeBranchFallback(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fakeResponse{
		"https://raw.githubusercontent.com/o/r/main/README.md":   {404, ""},
		"https://raw.githubusercontent.com/o/r/master/README.md": {200, "from master"},
	}}

	d, err := NewDescriptor("", HostGitHub, "o", "r", []string{"main", "master"})
	require.NoError(t, err)

	r := ResolveReadme(d, f)
	require.NotNil(t, r)
	assert.Equal(t, "from master", r.Text)
	assert.Equal(t, SourceRemote, r.Source)
	assert.Equal(t, []string{
		"https://raw.githubusercontent.com/o/r/main/README.md",
		"https://raw.githubusercontent.com/o/r/master/README.md",
	}, f.calls)
}

func TestRemoteReadmeHuggingFaceURL(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fakeResponse{
		"https://huggingface.co/org/model/raw/main/README.md": {200, "model card"},
	}}

	d, err := NewDescriptor("", HostHuggingFace, "org", "model", []string{"main"})
	require.NoError(t, err)

	r := ResolveReadme(d, f)
	require.NotNil(t, r)
	assert.Equal(t, "model card", r.Text)
}

func TestRemoteReadmeGenericBase(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fakeResponse{
		"https://example.com/artifact/README.md": {200, "generic readme"},
	}}

	d := &Descriptor{Host: HostGeneric, BaseURL: "https://example.com/artifact/"}

	r := ResolveReadme(d, f)
	require.NotNil(t, r)
	assert.Equal(t, "generic readme", r.Text)
}

func TestResolveReadmeNoFetcher(t *testing.T) {
	d, err := NewDescriptor("", HostGitHub, "o", "r", nil)
	require.NoError(t, err)
	assert.Nil(t, ResolveReadme(d, nil))
}

func TestResolveReadmeAllMiss(t *testing.T) {
	f := &fakeFetcher{}
	d, err := NewDescriptor("", HostGitHub, "o", "r", nil)
	require.NoError(t, err)
	assert.Nil(t, ResolveReadme(d, f))
	assert.Len(t, f.calls, len(DefaultBranches))
}

func TestRemoteCandidatesIncludeBaseURLFallback(t *testing.T) {
	d := &Descriptor{
		Host:     HostGitHub,
		Owner:    "o",
		Repo:     "r",
		Branches: []string{"main"},
		BaseURL:  "https://mirror.example.com/o/r",
	}

	urls := remoteCandidates(d)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasPrefix(urls[0], "https://raw.githubusercontent.com/"))
	assert.Equal(t, "https://mirror.example.com/o/r/README.md", urls[1])
}
