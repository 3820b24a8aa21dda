package cli

import (
	"fmt"

	"github.com/rampctl/rampctl/pkg/data"
	"github.com/urfave/cli/v2"
)

const historyLimitDefault = 20

var (
	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Filter by artifact name (owner/repo or dir name)",
	}

	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Max number of results",
		Value: historyLimitDefault,
	}

	historyCmd = &cli.Command{
		Name:            "history",
		Aliases:         []string{"h"},
		HideHelpCommand: true,
		Usage:           "List previously recorded ratings, newest first",
		Action:          cmdHistory,
		Flags: []cli.Flag{
			nameFlag,
			limitFlag,
		},
	}
)

func cmdHistory(c *cli.Context) error {
	cfg := getConfig(c)

	var name *string
	if v := c.String(nameFlag.Name); v != "" {
		name = &v
	}

	list, err := data.GetScores(cfg.DB, name, c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("querying score history: %w", err)
	}

	return encode(list)
}
