package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"configuration JSON path, comments allowed"`

	Run     *RunCmd     `command:"run"     description:"Run a script and print its report"`
	Verify  *VerifyCmd  `command:"verify"  description:"Check that a script behaves the same on the synchronized wrapper"`
	Stress  *StressCmd  `command:"stress"  description:"Replay the pushes of a script concurrently"`
	History *HistoryCmd `command:"history" description:"Show the newest recorded report of a script"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "run":
		o.Run = &RunCmd{}
	case "verify":
		o.Verify = &VerifyCmd{}
	case "stress":
		o.Stress = &StressCmd{}
	case "history":
		o.History = &HistoryCmd{}
	}
}
