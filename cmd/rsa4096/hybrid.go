package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/montgomery"
	"github.com/blck-snwmn/rsa4096/rsaerr"
	"github.com/blck-snwmn/rsa4096/schoolbook"
)

// hybridScenarios runs the same modular exponentiation through both
// engines directly (bypassing expselect's routing) and checks they
// agree, so a divergence localizes to one engine instead of the policy
// that picks between them.
func hybridScenarios() []scenario {
	return []scenario{
		{"schoolbook and montgomery agree", func(*zap.SugaredLogger) error {
			n := dec(benchmarkModulus)
			base := dec(benchmarkBase)
			exp := dec(benchmarkExponent)

			ctx, err := montgomery.Build(n)
			if err != nil {
				return err
			}
			viaMontgomery, err := montgomery.ExpMod(base, exp, ctx)
			if err != nil {
				return err
			}
			viaSchoolbook, err := schoolbook.ModExp(base, exp, n)
			if err != nil {
				return err
			}
			if bigint.Compare(viaMontgomery, viaSchoolbook) != bigint.Equal {
				return rsaerr.Wrap("hybrid", rsaerr.InternalInvariantBroken,
					errMismatch(codec.DecimalString(viaSchoolbook), codec.DecimalString(viaMontgomery)))
			}
			return nil
		}},
	}
}

func newHybridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hybrid",
		Short: "Cross-check the schoolbook and Montgomery engines against each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(hybridScenarios(), newLogger())
		},
	}
}
