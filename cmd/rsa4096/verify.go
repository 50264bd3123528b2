package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/rsa"
)

// coreScenarios is the small-key encrypt table named by this system's
// testable properties: n=35=5*7, e=5, verified against the concrete
// messages 2, 3, 4, plus the exponent-1 identity case.
func coreScenarios() []scenario {
	return []scenario{
		{"encrypt m=2", encryptExpect(smallModulus, smallExponent, "2", "32")},
		{"encrypt m=3", encryptExpect(smallModulus, smallExponent, "3", "33")},
		{"encrypt m=4", encryptExpect(smallModulus, smallExponent, "4", "9")},
		{"encrypt m=0 short-circuits", encryptExpect(smallModulus, smallExponent, "0", "0")},
		{"encrypt exponent=1 is identity", encryptExpect(smallModulus, "1", "34", "34")},
		{"round trip n=143", roundTripWideKey},
	}
}

func encryptExpect(n, e, m, want string) func(*zap.SugaredLogger) error {
	return func(logger *zap.SugaredLogger) error {
		pub, err := rsa.NewKey(dec(n), dec(e), false)
		if err != nil {
			return err
		}
		got, err := rsa.Encrypt(pub, dec(m), logger)
		if err != nil {
			return err
		}
		return requireDecimalEqual(got, want)
	}
}

func requireDecimalEqual(got bigint.Uint, want string) error {
	if codec.DecimalString(got) != want {
		return errMismatch(want, codec.DecimalString(got))
	}
	return nil
}

func roundTripWideKey(logger *zap.SugaredLogger) error {
	pub, err := rsa.NewKey(dec(wideModulus), dec(widePublicExp), false)
	if err != nil {
		return err
	}
	priv, err := rsa.NewKey(dec(wideModulus), dec(widePrivateExp), true)
	if err != nil {
		return err
	}
	m := dec("42")
	c, err := rsa.Encrypt(pub, m, logger)
	if err != nil {
		return err
	}
	back, err := rsa.Decrypt(priv, c, logger)
	if err != nil {
		return err
	}
	if bigint.Compare(back, m) != bigint.Equal {
		return errMismatch(codec.DecimalString(m), codec.DecimalString(back))
	}
	return nil
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the core encrypt/decrypt scenario table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(coreScenarios(), newLogger())
		},
	}
}
