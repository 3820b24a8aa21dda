package metric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFactorFromCounts(t *testing.T) {
	assert.Equal(t, 0.0, busFactorFromCounts(nil))
	assert.Equal(t, 0.0, busFactorFromCounts([]int{}))
	assert.Equal(t, 0.0, busFactorFromCounts([]int{42}))
	assert.Equal(t, 0.0, busFactorFromCounts([]int{42, 0, 0}))

	// Perfectly shared work maxes out.
	assert.InDelta(t, 1.0, busFactorFromCounts([]int{10, 10}), 0.0001)
	assert.InDelta(t, 1.0, busFactorFromCounts([]int{7, 7, 7, 7}), 0.0001)

	// Concentration lowers the score.
	skewed := busFactorFromCounts([]int{100, 1})
	assert.Greater(t, skewed, 0.0)
	assert.Less(t, skewed, 0.5)

	balanced := busFactorFromCounts([]int{60, 40})
	assert.Greater(t, balanced, skewed)
}

func TestBusFactorNoClient(t *testing.T) {
	d, err := NewDescriptor("", HostGitHub, "o", "r", nil)
	require.NoError(t, err)

	r := BusFactor(context.Background(), nil, d, nil)
	assert.Equal(t, 0.0, r.Score)
	assert.GreaterOrEqual(t, r.LatencyMS, int64(0))
}

func TestBusFactorNonGitHubWithoutLink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "no links here")

	d, err := NewDescriptor(dir, HostNone, "", "", nil)
	require.NoError(t, err)

	r := BusFactor(context.Background(), nil, d, nil)
	assert.Equal(t, 0.0, r.Score)
}

func TestFindGitHubURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"markdown link", "see [code](https://github.com/org/proj) for details", "https://github.com/org/proj"},
		{"plain url", "code at https://github.com/org/proj today", "https://github.com/org/proj"},
		{"bare reference", "hosted on github.com/org/proj for now", "https://github.com/org/proj"},
		{"markdown preferred", "github.com/bare/ref and [x](https://github.com/md/link)", "https://github.com/md/link"},
		{"none", "no links in this text", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FindGitHubURL(tc.text))
		})
	}
}

func TestLinkedGitHubRepoFromReadme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "Training code: https://github.com/big-lab/trainer")

	d, err := NewDescriptor(dir, HostNone, "", "", nil)
	require.NoError(t, err)

	owner, repo := linkedGitHubRepo(d, nil)
	assert.Equal(t, "big-lab", owner)
	assert.Equal(t, "trainer", repo)
}
