package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/mogud/jenga/core/script"
)

// StressCmd replays the pushes of a script concurrently against a
// synchronized container. Zero flags fall back to the Stress config.
type StressCmd struct {
	Script  string        `short:"s" long:"script" required:"true" description:"script path"`
	Workers int           `long:"workers" description:"concurrent workers"`
	Rounds  int           `long:"rounds" description:"replays per worker"`
	Timeout time.Duration `long:"timeout" description:"give up after this long, e.g. 30s"`
}

func (c *StressCmd) Execute(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := script.Load(c.Script)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	applyJengaConfig(s, cfg.Jenga)

	opt := script.StressOptions{
		Workers: cfg.Stress.Workers,
		Rounds:  cfg.Stress.Rounds,
		Timeout: cfg.Stress.Timeout,
	}
	if c.Workers > 0 {
		opt.Workers = c.Workers
	}
	if c.Rounds > 0 {
		opt.Rounds = c.Rounds
	}
	if c.Timeout > 0 {
		opt.Timeout = c.Timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := script.Stress(ctx, s, opt)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "%d pushes from %d workers x %d rounds, len %d, %v\n",
		result.Pushes, opt.Workers, opt.Rounds, result.Len, result.Elapsed)
	return nil
}
