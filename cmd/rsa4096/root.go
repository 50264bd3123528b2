package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// newLogger builds the SugaredLogger passed down to expselect, the only
// place outside this CLI that logs anything. Never on the correctness
// path; a failure to build a production logger falls back to a no-op one
// rather than aborting the command.
func newLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// describeFailure renders a single line naming the error's rsaerr.Kind
// and originating operation. Errors that did not originate from rsaerr
// (e.g. a multierror wrapping several scenario failures) are rendered
// via their own Error() string.
func describeFailure(err error) string {
	if kind, ok := rsaerr.KindOf(err); ok {
		return "rsa4096: " + string(kind) + ": " + err.Error()
	}
	return "rsa4096: " + err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rsa4096",
		Short:         "Exercise the RSA-4096 arithmetic primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newVerifyCmd(),
		newTestCmd(),
		newBenchmarkCmd(),
		newBinaryCmd(),
		newManualCmd(),
		newReal4096Cmd(),
		newHybridCmd(),
		newRoundtripCmd(),
		newBoundaryCmd(),
		newMontgomeryCmd(),
		newAlgorithmsCmd(),
	)
	return root
}
