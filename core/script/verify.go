package script

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mogud/jenga/core/logging/slog"
)

// Verify runs s against a plain container and against its synchronized
// wrapper. The reports must match in everything but the Synchronized flag.
func Verify(s *Script) error {
	base := Run(s, false)
	synced := Run(s, true)

	diff := cmp.Diff(base, synced, cmpopts.IgnoreFields(Report{}, "Synchronized"))
	if diff != "" {
		slog.Errorf("synchronized run differs from the plain run")
		return fmt.Errorf("%w: (-plain +synchronized)\n%s", ErrMismatch, diff)
	}
	return nil
}
