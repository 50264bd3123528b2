package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/expselect"
	"github.com/blck-snwmn/rsa4096/montgomery"
)

// algorithmSamples is a handful of odd moduli spanning the
// montgomeryMinBits threshold, reported by name and bit length.
var algorithmSamples = []string{
	smallModulus,     // 35, odd but narrow: schoolbook
	wideModulus,      // 143, odd but still narrow: schoolbook
	benchmarkModulus, // wide and odd: montgomery
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "Report which engine expselect picks for a range of moduli",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range algorithmSamples {
				n := dec(s)
				ctx, err := montgomery.Build(n)
				if err != nil {
					ctx = nil
				}
				choice := expselect.Choose(n, ctx)
				fmt.Printf("n=%s bits=%d -> %s\n", codec.DecimalString(n), n.BitLen(), choice)
			}
			return nil
		},
	}
}
