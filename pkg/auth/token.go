package auth

import (
	"errors"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	tokenFileName  = "github_token"
	tokenFileMode  = 0600
	keyringService = "rampctl"
	keyringUser    = "github_token"

	// Env vars honored before any stored token, matching what the
	// hosted registries' own tooling reads.
	gitHubTokenEnvVar      = "GITHUB_TOKEN"
	huggingFaceTokenEnvVar = "HUGGINGFACE_HUB_TOKEN"
)

var errNoToken = errors.New("no GitHub token found, run 'rampctl auth' or set GITHUB_TOKEN")

// SaveGitHubToken stores the token in the OS keychain, falling back to
// a file in the app home dir when no keychain is available.
func SaveGitHubToken(homeDir, token string) error {
	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		slog.Warn("keychain unavailable, falling back to file", "error", err)
		return os.WriteFile(path.Join(homeDir, tokenFileName), []byte(token), tokenFileMode)
	}

	// Clean up legacy file if it exists
	os.Remove(path.Join(homeDir, tokenFileName))
	return nil
}

// GetGitHubToken resolves a token in order: env var, OS keychain,
// legacy token file. Returns errNoToken when none is set; callers that
// can degrade to anonymous access treat that as "no capability".
func GetGitHubToken(homeDir string) (string, error) {
	if t := strings.TrimSpace(os.Getenv(gitHubTokenEnvVar)); t != "" {
		return t, nil
	}

	if t, err := keyring.Get(keyringService, keyringUser); err == nil && t != "" {
		return t, nil
	}

	b, err := os.ReadFile(path.Join(homeDir, tokenFileName))
	if err != nil {
		return "", errNoToken
	}

	t := strings.TrimSpace(string(b))
	if t == "" {
		return "", errNoToken
	}
	return t, nil
}

// GetHuggingFaceToken returns the Hugging Face hub token if set.
// Hub raw-content fetches work anonymously for public repos, so this
// is optional everywhere.
func GetHuggingFaceToken() string {
	return strings.TrimSpace(os.Getenv(huggingFaceTokenEnvVar))
}
