package metric

import (
	"os"
	"strings"
	"time"
)

// Reproducibility signal weights. A pinned dependency manifest is the
// strongest indicator that experiments can be re-run.
const (
	reqsScore      = 0.4
	envScore       = 0.2
	notebookScore  = 0.2
	reproduceScore = 0.2
)

// Reproducibility estimates how easily the artifact's experiments can
// be re-run, from files present in the local checkout: a requirements
// manifest, an environment file, notebooks, and a README that talks
// about reproducing results. Remote-only artifacts score 0.
func Reproducibility(d *Descriptor) *Result {
	start := time.Now()

	score := 0.0
	if entries, err := os.ReadDir(d.LocalDir); d.LocalDir != "" && err == nil {
		var hasReqs, hasEnv, hasNotebook bool
		for _, e := range entries {
			name := strings.ToLower(e.Name())
			switch {
			case strings.HasPrefix(name, "requirements"):
				hasReqs = true
			case strings.HasPrefix(name, "environment") &&
				(strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")):
				hasEnv = true
			case strings.HasSuffix(name, ".ipynb"):
				hasNotebook = true
			}
		}

		if hasReqs {
			score += reqsScore
		}
		if hasEnv {
			score += envScore
		}
		if hasNotebook {
			score += notebookScore
		}
		if r := localReadme(d.LocalDir); r != nil &&
			strings.Contains(strings.ToLower(r.Text), "reproduce") {
			score += reproduceScore
		}
	}

	return &Result{
		Score:     round4(score),
		LatencyMS: time.Since(start).Milliseconds(),
	}
}
