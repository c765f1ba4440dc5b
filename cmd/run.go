package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mogud/jenga/core/logging/slog"
	"github.com/mogud/jenga/core/script"
)

// RunCmd executes a script and prints the report.
type RunCmd struct {
	Script  string `short:"s" long:"script" required:"true" description:"script path (.json, .jsonc, .yaml, .yml, optionally .gz)"`
	Sync    bool   `long:"sync" description:"run against the synchronized wrapper"`
	Format  string `long:"format" choice:"json" choice:"yaml" default:"json" description:"report format"`
	Watch   bool   `short:"w" long:"watch" description:"run again whenever the script changes, until interrupted"`
	History string `long:"history" description:"bolt file to record every report in"`
}

func (c *RunCmd) Execute(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if c.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return script.Watch(ctx, c.Script, func(s *script.Script, err error) {
			if err != nil {
				slog.Errorf("load script: %v", err)
				return
			}
			if err := c.report(cfg, s); err != nil {
				slog.Errorf("%v", err)
			}
		})
	}

	s, err := script.Load(c.Script)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	return c.report(cfg, s)
}

func (c *RunCmd) report(cfg *Config, s *script.Script) error {
	applyJengaConfig(s, cfg.Jenga)
	report := script.Run(s, c.Sync)

	if c.History != "" {
		history, err := script.OpenHistory(c.History)
		if err != nil {
			return err
		}
		defer history.Close()

		seq, err := history.Record(filepath.Base(c.Script), report)
		if err != nil {
			return err
		}
		slog.Infof("recorded report #%d of %s", seq, c.Script)
	}
	return script.Encode(stdout, report, script.Format(c.Format))
}
