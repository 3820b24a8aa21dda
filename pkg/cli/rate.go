package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v83/github"
	"github.com/rampctl/rampctl/pkg/auth"
	"github.com/rampctl/rampctl/pkg/data"
	"github.com/rampctl/rampctl/pkg/metric"
	"github.com/rampctl/rampctl/pkg/net"
	"github.com/urfave/cli/v2"
)

var (
	dirFlag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "Path to a local checkout of the artifact",
	}

	branchFlag = &cli.StringSliceFlag{
		Name:  "branch",
		Usage: "Branch candidate for remote README lookup (repeatable, in priority order)",
	}

	noRemoteFlag = &cli.BoolFlag{
		Name:  "no-remote",
		Usage: "Disable remote README fetching, rate local content only",
	}

	skipSaveFlag = &cli.BoolFlag{
		Name:  "skip-save",
		Usage: "Print the rating without recording it in the registry",
	}

	rateCmd = &cli.Command{
		Name:            "rate",
		Aliases:         []string{"r"},
		HideHelpCommand: true,
		Usage:           "Rate an artifact (GitHub repo, Hugging Face model, or local dir)",
		ArgsUsage:       "[url | owner/repo]",
		Action:          cmdRate,
		Flags: []cli.Flag{
			dirFlag,
			branchFlag,
			noRemoteFlag,
			skipSaveFlag,
		},
	}
)

func cmdRate(c *cli.Context) error {
	cfg := getConfig(c)

	d, err := makeDescriptor(c, cfg)
	if err != nil {
		return err
	}

	var fetcher metric.Fetcher
	if cfg.Conf.Remote && !c.Bool(noRemoteFlag.Name) {
		fetcher = net.NewClient()
	}

	score := metric.NetScore(c.Context, d, fetcher, gitHubClient(c.Context, cfg))

	if !c.Bool(skipSaveFlag.Name) {
		if err := data.SaveScore(cfg.DB, score); err != nil {
			return fmt.Errorf("saving score: %w", err)
		}
	}

	return encode(score)
}

func makeDescriptor(c *cli.Context, cfg *appConfig) (*metric.Descriptor, error) {
	dir := c.String(dirFlag.Name)
	arg := c.Args().First()

	branches := c.StringSlice(branchFlag.Name)
	if len(branches) == 0 {
		branches = cfg.Conf.Branches
	}

	if arg == "" {
		if dir == "" {
			return nil, errors.New("either an artifact URL/id or --dir is required")
		}
		return metric.NewDescriptor(dir, metric.HostNone, "", "", branches)
	}

	d, err := metric.ParseArtifactURL(arg)
	if err != nil {
		return nil, err
	}
	d.LocalDir = dir
	d.Branches = branches
	return d, nil
}

// gitHubClient returns an authenticated client when a token is
// available, an anonymous one otherwise. Anonymous access still works
// for public repos, just with a tighter rate limit.
func gitHubClient(ctx context.Context, cfg *appConfig) *github.Client {
	token, err := auth.GetGitHubToken(cfg.HomeDir)
	if err != nil {
		slog.Debug("no GitHub token, using anonymous client")
		return github.NewClient(net.GetHTTPClient())
	}
	return github.NewClient(net.GetOAuthClient(ctx, token))
}
