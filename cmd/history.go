package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mogud/jenga/core/script"
)

// HistoryCmd prints the newest report `run --history` recorded for a script.
type HistoryCmd struct {
	DB     string `short:"d" long:"db" required:"true" description:"bolt file written by run --history"`
	Script string `short:"s" long:"script" required:"true" description:"script path or file name"`
	Format string `long:"format" choice:"json" choice:"yaml" default:"json" description:"report format"`
}

func (c *HistoryCmd) Execute(_ []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	history, err := script.OpenHistory(c.DB)
	if err != nil {
		return err
	}
	defer history.Close()

	name := filepath.Base(c.Script)
	report, seq, err := history.Latest(name)
	if err != nil {
		return err
	}
	count, err := history.Count(name)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "# %s: report %d of %d\n", name, seq, count)
	return script.Encode(stdout, report, script.Format(c.Format))
}
