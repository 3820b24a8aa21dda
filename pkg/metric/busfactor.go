package metric

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/go-github/v83/github"
)

const contributorPageSize = 100

// BusFactor estimates how concentrated the artifact's development is.
// Contribution counts come from the GitHub contributors API; the score
// is the normalized entropy of that distribution, so a single-author
// repo scores 0 and an evenly shared one approaches 1. Hugging Face
// artifacts are scored through the GitHub repo their README links.
// A nil client (no GitHub capability) yields 0.
func BusFactor(ctx context.Context, client *github.Client, d *Descriptor, f Fetcher) *Result {
	start := time.Now()
	done := func(score float64) *Result {
		return &Result{Score: score, LatencyMS: time.Since(start).Milliseconds()}
	}

	owner, repo := d.Owner, d.Repo
	if d.Host != HostGitHub {
		owner, repo = linkedGitHubRepo(d, f)
	}

	if client == nil || owner == "" || repo == "" {
		return done(0.0)
	}

	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: contributorPageSize},
	}
	contribs, resp, err := client.Repositories.ListContributors(ctx, owner, repo, opts)
	if err != nil || resp.StatusCode != http.StatusOK {
		slog.Debug("error listing contributors", "org", owner, "repo", repo, "error", err)
		return done(0.0)
	}

	counts := make([]int, 0, len(contribs))
	for _, c := range contribs {
		counts = append(counts, c.GetContributions())
	}

	return done(round4(busFactorFromCounts(counts)))
}

// busFactorFromCounts computes Shannon entropy over the contribution
// distribution, normalized by the maximum entropy for that many
// contributors.
func busFactorFromCounts(counts []int) float64 {
	total := 0
	n := 0
	for _, c := range counts {
		if c > 0 {
			total += c
			n++
		}
	}
	if n <= 1 || total == 0 {
		return 0.0
	}

	entropy := 0.0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}

	return entropy / math.Log2(float64(n))
}

// linkedGitHubRepo resolves the artifact's README and extracts the
// owner/repo of the first GitHub link found in it.
func linkedGitHubRepo(d *Descriptor, f Fetcher) (owner, repo string) {
	r := ResolveReadme(d, f)
	if r == nil {
		return "", ""
	}

	u := FindGitHubURL(r.Text)
	if u == "" {
		return "", ""
	}

	o, rp, ok := splitOwnerRepo(stripGitHubHost(u))
	if !ok {
		return "", ""
	}
	return o, rp
}

func stripGitHubHost(u string) string {
	for _, prefix := range []string{"https://github.com", "http://github.com"} {
		if len(u) > len(prefix) && u[:len(prefix)] == prefix {
			return u[len(prefix):]
		}
	}
	return u
}
