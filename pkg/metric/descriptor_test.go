package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptorValidation(t *testing.T) {
	_, err := NewDescriptor("", HostNone, "", "", nil)
	assert.Error(t, err)

	_, err = NewDescriptor("", HostGitHub, "o", "", nil)
	assert.Error(t, err)

	d, err := NewDescriptor("/tmp/x", HostNone, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, HostNone, d.Host)

	d, err = NewDescriptor("", HostGitHub, "o", "r", []string{"dev"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, d.branches())
}

func TestDescriptorDefaultBranches(t *testing.T) {
	d, err := NewDescriptor("", HostGitHub, "o", "r", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBranches, d.branches())
}

func TestParseArtifactURL(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		host  HostKind
		owner string
		repo  string
	}{
		{"github url", "https://github.com/google/go-github", HostGitHub, "google", "go-github"},
		{"github git suffix", "https://github.com/google/go-github.git", HostGitHub, "google", "go-github"},
		{"huggingface url", "https://huggingface.co/openai/whisper-tiny", HostHuggingFace, "openai", "whisper-tiny"},
		{"huggingface tree suffix", "https://huggingface.co/openai/whisper-tiny/tree/main", HostHuggingFace, "openai", "whisper-tiny"},
		{"bare id", "facebook/wav2vec2-base", HostHuggingFace, "facebook", "wav2vec2-base"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseArtifactURL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.host, d.Host)
			assert.Equal(t, tc.owner, d.Owner)
			assert.Equal(t, tc.repo, d.Repo)
		})
	}
}

func TestParseArtifactURLGeneric(t *testing.T) {
	d, err := ParseArtifactURL("https://example.com/artifacts/thing/")
	require.NoError(t, err)
	assert.Equal(t, HostGeneric, d.Host)
	assert.Equal(t, "https://example.com/artifacts/thing", d.BaseURL)
}

func TestParseArtifactURLRejectsGarbage(t *testing.T) {
	_, err := ParseArtifactURL("")
	assert.Error(t, err)

	_, err = ParseArtifactURL("not-an-id")
	assert.Error(t, err)

	_, err = ParseArtifactURL("https://github.com/only-owner")
	assert.Error(t, err)
}

func TestDescriptorNameAndURL(t *testing.T) {
	d, err := NewDescriptor("", HostGitHub, "o", "r", nil)
	require.NoError(t, err)
	assert.Equal(t, "o/r", d.Name())
	assert.Equal(t, "https://github.com/o/r", d.URL())

	d, err = NewDescriptor("/repos/myproj", HostNone, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "myproj", d.Name())
	assert.Empty(t, d.URL())

	d, err = NewDescriptor("", HostHuggingFace, "org", "model", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://huggingface.co/org/model", d.URL())
}
