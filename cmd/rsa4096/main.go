// Command rsa4096 is a thin cobra shell over the bigint/codec/
// schoolbook/montgomery/modinv/expselect/rsa library surface, used to
// exercise and demonstrate it end to end. It recognizes no flags beyond
// its subcommand name, consumes no environment variables, files, or
// network sockets, and exits 0 on all-pass, non-zero on any failure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeFailure(err))
		os.Exit(1)
	}
}
