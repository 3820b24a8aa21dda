package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/rampctl/rampctl/pkg/config"
	"github.com/rampctl/rampctl/pkg/data"
	"github.com/rampctl/rampctl/pkg/logging"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "rampctl"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dbFilePathFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the Sqlite database file",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	HomeDir string
	DBPath  string
	Debug   bool
	DB      *sql.DB
	Conf    *config.Config
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Metadata:             map[string]any{},
		Usage:                "CLI for rating how ready a repo or model is for newcomers",
		Flags: []cli.Flag{
			debugFlag,
			dbFilePathFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			rateCmd,
			historyCmd,
			authCmd,
			serverCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			home, created, err := config.GetOrCreateHomeDir(appName)
			if err != nil {
				return fmt.Errorf("resolving app home dir: %w", err)
			}
			if created {
				slog.Debug("created app home dir", "path", home)
			}

			conf, err := config.ReadOrCreate(home)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			f := c.String(formatFlag.Name)
			if f == "" {
				f = conf.Format
			}
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = path.Join(home, data.DataFileName)
			}

			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				HomeDir: home,
				DBPath:  dbPath,
				Debug:   c.Bool(debugFlag.Name),
				DB:      db,
				Conf:    conf,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
