package metric

import (
	"regexp"
	"strings"
)

// GitHub link patterns in descending confidence: a markdown link, a
// plain URL, then a bare github.com reference.
var (
	githubMarkdownRe = regexp.MustCompile(`(?i)\[[^\]]+\]\((https?://github\.com/[^'")>\s\]]+)\)`)
	githubPlainRe    = regexp.MustCompile(`(?i)(https?://github\.com/[^'")>\s\]]+)`)
	githubBareRe     = regexp.MustCompile(`(?i)(github\.com/[^'")>\s\]]+)`)
)

// FindGitHubURL extracts the first GitHub repository link from README
// text. Hugging Face model cards commonly link the training code this
// way. Returns "" when no link is present.
func FindGitHubURL(text string) string {
	if m := githubMarkdownRe.FindStringSubmatch(text); m != nil {
		return normalizeGitHubHref(m[1])
	}
	if m := githubPlainRe.FindStringSubmatch(text); m != nil {
		return normalizeGitHubHref(m[1])
	}
	if m := githubBareRe.FindStringSubmatch(text); m != nil {
		return normalizeGitHubHref(m[1])
	}
	return ""
}

func normalizeGitHubHref(href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(strings.ToLower(href), "github.com/") {
		return "https://" + href
	}
	return href
}
