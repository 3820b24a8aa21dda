package metric

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// licenseNames are the local candidates, tried in order.
var licenseNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"}

// licenseKeywords maps license markers to compatibility scores,
// permissive first. Order matters: the first match wins.
var licenseKeywords = []struct {
	keyword string
	score   float64
	label   string
}{
	{"mit", 1.0, "MIT"},
	{"apache", 0.95, "Apache-2.0"},
	{"bsd", 0.9, "BSD"},
	{"mozilla", 0.75, "MPL"},
	{"mpl", 0.75, "MPL"},
	{"lgpl", 0.6, "LGPL"},
	{"creative commons", 0.5, "CC-BY"},
	{"cc-by", 0.5, "CC-BY"},
	{"gpl", 0.4, "GPL"},
}

// License scores how permissive the artifact's license is. It prefers
// a license file in the local directory and falls back to scanning the
// resolved README. Unknown or missing license text scores 0.
func License(d *Descriptor, f Fetcher) *Result {
	start := time.Now()

	text := localLicenseText(d.LocalDir)
	if text == "" {
		if r := ResolveReadme(d, f); r != nil {
			text = r.Text
		}
	}

	score, _ := licenseScore(text)
	return &Result{
		Score:     score,
		LatencyMS: time.Since(start).Milliseconds(),
	}
}

func localLicenseText(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range licenseNames {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		return strings.ToValidUTF8(string(b), "�")
	}
	return ""
}

// licenseScore runs the keyword heuristic and returns the score with
// the matched license label.
func licenseScore(text string) (float64, string) {
	if text == "" {
		return 0.0, "Unknown"
	}

	lower := strings.ToLower(text)
	for _, k := range licenseKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.score, k.label
		}
	}
	return 0.0, "Unknown"
}
