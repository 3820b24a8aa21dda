package metric

import (
	"math"
	"strings"
	"time"
)

const (
	// Word-count bands for the length heuristic. A handful of words is
	// not documentation; anything past ~300 words reads like a real
	// README. Thresholds are fixed here and exercised in tests.
	wordsShort  = 5
	wordsMedium = 100
	wordsLong   = 300

	lengthScoreShort  = 0.1
	lengthScoreMedium = 0.25
	lengthScoreLong   = 0.4

	installScore = 0.35
	snippetScore = 0.25
)

// installPhrases flag a README that tells the reader how to get the
// thing running. Matched case-insensitively as plain substrings.
var installPhrases = []string{
	"installation",
	"pip install",
	"conda install",
	"npm install",
	"cargo install",
	"go install",
	"brew install",
	"apt-get install",
	"docker",
}

// Result is one metric outcome: a score in [0, 1] rounded to four
// decimal places, and the wall-clock latency of computing it.
type Result struct {
	Score     float64 `json:"score" yaml:"score"`
	LatencyMS int64   `json:"latency_ms" yaml:"latencyMs"`
}

// RampUp estimates how quickly a newcomer could start using the
// artifact, based on its README. The pipeline resolves documentation
// (local first, then remote when a Fetcher is available), scores the
// text, and reports the elapsed time of the whole sequence. It never
// returns an error: an unresolvable README scores 0.
func RampUp(d *Descriptor, f Fetcher) *Result {
	start := time.Now()

	score := 0.0
	if r := ResolveReadme(d, f); r != nil {
		score = scoreReadme(r.Text)
	}

	return &Result{
		Score:     score,
		LatencyMS: time.Since(start).Milliseconds(),
	}
}

// scoreReadme sums three independent signals, clamped to 1.0:
// document length, installation instructions, and code snippets.
func scoreReadme(text string) float64 {
	score := lengthScore(text)

	lower := strings.ToLower(text)
	for _, phrase := range installPhrases {
		if strings.Contains(lower, phrase) {
			score += installScore
			break
		}
	}

	if hasCodeSnippet(text) {
		score += snippetScore
	}

	return math.Min(1.0, round4(score))
}

func lengthScore(text string) float64 {
	words := len(strings.Fields(text))
	switch {
	case words < wordsShort:
		return 0.0
	case words < wordsMedium:
		return lengthScoreShort
	case words < wordsLong:
		return lengthScoreMedium
	default:
		return lengthScoreLong
	}
}

// hasCodeSnippet spots fenced code blocks or lines indented far enough
// to read as code.
func hasCodeSnippet(text string) bool {
	if strings.Contains(text, "```") {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			return true
		}
	}
	return false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
