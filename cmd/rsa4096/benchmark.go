package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/blck-snwmn/rsa4096/expselect"
	"github.com/blck-snwmn/rsa4096/montgomery"
)

// benchmarkModulus is 2^600 - 1: odd (every bit set) and, at 600 bits,
// comfortably past montgomeryMinBits, so the loop below actually
// exercises both engines instead of routing everything to schoolbook.
// benchmarkBase/benchmarkExponent are fixed operands well within range.
var benchmarkModulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 600), big.NewInt(1)).String()

const (
	benchmarkBase      = "12345678901234567890123456789012345678901"
	benchmarkExponent  = "987654321098765432109876543210987654321"
	benchmarkIteration = 200
)

func newBenchmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark",
		Short: "Time modular exponentiation under schoolbook and Montgomery",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := dec(benchmarkModulus)
			base := dec(benchmarkBase)
			exp := dec(benchmarkExponent)

			ctx, err := montgomery.Build(n)
			if err != nil {
				return err
			}

			logger := newLogger()
			start := time.Now()
			for i := 0; i < benchmarkIteration; i++ {
				if _, err := expselect.ModExp(base, exp, n, nil, logger); err != nil {
					return err
				}
			}
			schoolbookElapsed := time.Since(start)

			start = time.Now()
			for i := 0; i < benchmarkIteration; i++ {
				if _, err := expselect.ModExp(base, exp, n, ctx, logger); err != nil {
					return err
				}
			}
			montgomeryElapsed := time.Since(start)

			fmt.Printf("schoolbook: %v for %d iterations\n", schoolbookElapsed, benchmarkIteration)
			fmt.Printf("montgomery: %v for %d iterations\n", montgomeryElapsed, benchmarkIteration)
			return nil
		},
	}
}
