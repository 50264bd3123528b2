package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/modinv"
	"github.com/blck-snwmn/rsa4096/schoolbook"
)

// libraryScenarios exercises the bigint, codec, schoolbook, and modinv
// components directly (montgomery has its own subcommand), below
// the RSA collaborator, so a failure here localizes to a specific
// component rather than the composite encrypt/decrypt path verify
// already covers.
func libraryScenarios() []scenario {
	return []scenario{
		{"bigint add/sub round trip", func(*zap.SugaredLogger) error {
			a, b := dec("123456789"), dec("987654321")
			sum, err := bigint.Add(a, b)
			if err != nil {
				return err
			}
			back, err := bigint.Sub(sum, b)
			if err != nil {
				return err
			}
			if bigint.Compare(back, a) != bigint.Equal {
				return errMismatch(codec.DecimalString(a), codec.DecimalString(back))
			}
			return nil
		}},
		{"bigint div/mod identity", func(*zap.SugaredLogger) error {
			a, b := dec("1000003"), dec("7")
			q, r, err := bigint.DivMod(a, b)
			if err != nil {
				return err
			}
			prod, err := bigint.Mul(q, b)
			if err != nil {
				return err
			}
			sum, err := bigint.Add(prod, r)
			if err != nil {
				return err
			}
			if bigint.Compare(sum, a) != bigint.Equal {
				return errMismatch(codec.DecimalString(a), codec.DecimalString(sum))
			}
			return nil
		}},
		{"codec decimal round trip", func(*zap.SugaredLogger) error {
			const want = "340282366920938463463374607431768211455"
			v, err := codec.ParseDecimal(want)
			if err != nil {
				return err
			}
			return requireDecimalEqual(v, want)
		}},
		{"schoolbook modexp 2^5 mod 35", func(*zap.SugaredLogger) error {
			got, err := schoolbook.ModExp(dec("2"), dec("5"), dec(smallModulus))
			if err != nil {
				return err
			}
			return requireDecimalEqual(got, "32")
		}},
		{"modinv 3 * inv(3,11) == 1", func(*zap.SugaredLogger) error {
			inv, err := modinv.InvMod(dec("3"), dec("11"))
			if err != nil {
				return err
			}
			return requireDecimalEqual(inv, "4")
		}},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Exercise each arithmetic component in isolation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(libraryScenarios(), newLogger())
		},
	}
}
