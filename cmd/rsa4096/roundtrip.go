package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/rsa"
)

// roundtripScenarios encrypts and decrypts every message in [1, n) under
// the n=143=11*13, e=7, d=103 key, the widest key small enough to
// exhaustively enumerate.
func roundtripScenarios() []scenario {
	return []scenario{
		{"exhaustive round trip n=143", func(logger *zap.SugaredLogger) error {
			pub, err := rsa.NewKey(dec(wideModulus), dec(widePublicExp), false)
			if err != nil {
				return err
			}
			priv, err := rsa.NewKey(dec(wideModulus), dec(widePrivateExp), true)
			if err != nil {
				return err
			}
			for m := uint32(1); m < 143; m++ {
				mv := bigint.FromU32(m)
				c, err := rsa.Encrypt(pub, mv, logger)
				if err != nil {
					return err
				}
				back, err := rsa.Decrypt(priv, c, logger)
				if err != nil {
					return err
				}
				if bigint.Compare(back, mv) != bigint.Equal {
					return errMismatch(codec.DecimalString(mv), codec.DecimalString(back))
				}
			}
			return nil
		}},
	}
}

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip",
		Short: "Exhaustively round-trip every message under a small key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(roundtripScenarios(), newLogger())
		},
	}
}
