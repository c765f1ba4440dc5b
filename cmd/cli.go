package cmd

import (
	"io"
	"strings"

	"github.com/jessevdk/go-flags"
)

var stdout io.Writer

// Run parses args and executes the selected sub-command, writing reports to
// out.
func Run(args []string, out io.Writer) error {
	setConfigPath(extractConfigPath(args))
	stdout = out

	opts := &Options{}
	var first string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") && a != configPath {
			first = a
			break
		}
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// extractConfigPath searches the raw argument list for -f/--config before
// the full parse so that sub-commands can load the config early.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}
