package cmd

import (
	"fmt"

	"github.com/mogud/jenga/core/script"
)

// VerifyCmd fails when the synchronized wrapper reports anything the plain
// container does not.
type VerifyCmd struct {
	Script string `short:"s" long:"script" required:"true" description:"script path"`
}

func (c *VerifyCmd) Execute(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := script.Load(c.Script)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	applyJengaConfig(s, cfg.Jenga)

	if err := script.Verify(s); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "%s: %d steps, plain and synchronized runs agree\n", c.Script, len(s.Steps))
	return nil
}
