package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/montgomery"
)

// montgomeryScenarios exercises the Montgomery context directly: the
// word-inverse invariant, form round-trip, and multiply congruence, each
// against the n=143 key used elsewhere in this CLI.
func montgomeryScenarios() []scenario {
	return []scenario{
		{"word inverse invariant", func(*zap.SugaredLogger) error {
			ctx, err := montgomery.Build(dec(wideModulus))
			if err != nil {
				return err
			}
			if ctx.N.Limb(0)*ctx.NPrime != 0xffffffff {
				return errMismatch("0xffffffff", "mismatch")
			}
			return nil
		}},
		{"form round trip", func(*zap.SugaredLogger) error {
			ctx, err := montgomery.Build(dec(wideModulus))
			if err != nil {
				return err
			}
			a := dec("42")
			form, err := montgomery.ToForm(a, ctx)
			if err != nil {
				return err
			}
			back, err := montgomery.FromForm(form, ctx)
			if err != nil {
				return err
			}
			if bigint.Compare(back, a) != bigint.Equal {
				return errMismatch(codec.DecimalString(a), codec.DecimalString(back))
			}
			return nil
		}},
		{"mulmod agrees with modexp by exponent 2", func(*zap.SugaredLogger) error {
			ctx, err := montgomery.Build(dec(wideModulus))
			if err != nil {
				return err
			}
			a := dec("42")
			aForm, err := montgomery.ToForm(a, ctx)
			if err != nil {
				return err
			}
			viaMul, err := montgomery.MulMod(aForm, aForm, ctx)
			if err != nil {
				return err
			}
			viaExp, err := montgomery.ExpMod(a, dec("2"), ctx)
			if err != nil {
				return err
			}
			viaMulPlain, err := montgomery.FromForm(viaMul, ctx)
			if err != nil {
				return err
			}
			if bigint.Compare(viaMulPlain, viaExp) != bigint.Equal {
				return errMismatch(codec.DecimalString(viaExp), codec.DecimalString(viaMulPlain))
			}
			return nil
		}},
	}
}

func newMontgomeryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "montgomery",
		Short: "Exercise the Montgomery context directly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(montgomeryScenarios(), newLogger())
		},
	}
}
