package metric

import (
	"context"
	"time"

	"github.com/google/go-github/v83/github"
	"golang.org/x/sync/errgroup"
)

// ArtifactScore is the aggregate rating for one artifact. Net is the
// mean of the individual metric scores; LatencyMS sums their
// latencies.
type ArtifactScore struct {
	Name            string   `json:"name" yaml:"name"`
	URL             string   `json:"url,omitempty" yaml:"url,omitempty"`
	Host            HostKind `json:"host" yaml:"host"`
	RampUp          *Result  `json:"ramp_up" yaml:"rampUp"`
	License         *Result  `json:"license" yaml:"license"`
	BusFactor       *Result  `json:"bus_factor" yaml:"busFactor"`
	Reproducibility *Result  `json:"reproducibility" yaml:"reproducibility"`
	Net             float64  `json:"net" yaml:"net"`
	LatencyMS       int64    `json:"latency_ms" yaml:"latencyMs"`
	CreatedAt       string   `json:"created_at,omitempty" yaml:"createdAt,omitempty"`
}

// NetScore rates the artifact on every metric and aggregates the
// results. The metrics are independent of each other, so they run
// concurrently; each metric's own pipeline stays sequential. Like the
// metrics themselves, aggregation never fails: missing capabilities
// (nil fetcher, nil GitHub client) simply zero the affected scores.
func NetScore(ctx context.Context, d *Descriptor, f Fetcher, gh *github.Client) *ArtifactScore {
	s := &ArtifactScore{
		Name: d.Name(),
		URL:  d.URL(),
		Host: d.Host,
	}

	var g errgroup.Group
	g.Go(func() error {
		s.RampUp = RampUp(d, f)
		return nil
	})
	g.Go(func() error {
		s.License = License(d, f)
		return nil
	})
	g.Go(func() error {
		s.BusFactor = BusFactor(ctx, gh, d, f)
		return nil
	})
	g.Go(func() error {
		s.Reproducibility = Reproducibility(d)
		return nil
	})
	_ = g.Wait() // metric funcs never error

	results := []*Result{s.RampUp, s.License, s.BusFactor, s.Reproducibility}
	sum := 0.0
	for _, r := range results {
		sum += r.Score
		s.LatencyMS += r.LatencyMS
	}
	s.Net = round4(sum / float64(len(results)))
	s.CreatedAt = time.Now().UTC().Format("2006-01-02T15:04:05Z")

	return s
}
