package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/modinv"
	"github.com/blck-snwmn/rsa4096/montgomery"
	"github.com/blck-snwmn/rsa4096/rsa"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// expectKind runs fn and requires it to fail with exactly kind.
func expectKind(kind rsaerr.Kind, fn func() error) func(*zap.SugaredLogger) error {
	return func(*zap.SugaredLogger) error {
		err := fn()
		if err == nil {
			return errMismatch(string(kind), "<nil>")
		}
		got, ok := rsaerr.KindOf(err)
		if !ok || got != kind {
			return errMismatch(string(kind), string(got))
		}
		return nil
	}
}

// boundaryScenarios exercises the DivisionByZero, Underflow, EvenModulus,
// ZeroModulus, ZeroOperand, NoInverse, and DomainError kinds, confirming
// each of those failure modes is reachable and correctly classified rather
// than silently miscategorized. BadFormat, BufferTooSmall, Overflow, and
// InternalInvariantBroken are not exercised here.
func boundaryScenarios() []scenario {
	return []scenario{
		{"div by zero", expectKind(rsaerr.DivisionByZero, func() error {
			_, _, err := bigint.DivMod(dec("5"), bigint.Zero())
			return err
		})},
		{"subtraction underflow", expectKind(rsaerr.Underflow, func() error {
			_, err := bigint.Sub(dec("1"), dec("2"))
			return err
		})},
		{"montgomery even modulus", expectKind(rsaerr.EvenModulus, func() error {
			_, err := montgomery.Build(dec("34"))
			return err
		})},
		{"montgomery zero modulus", expectKind(rsaerr.ZeroModulus, func() error {
			_, err := montgomery.Build(bigint.Zero())
			return err
		})},
		{"modinv zero operand", expectKind(rsaerr.ZeroOperand, func() error {
			_, err := modinv.InvMod(bigint.Zero(), dec("7"))
			return err
		})},
		{"modinv no inverse", expectKind(rsaerr.NoInverse, func() error {
			_, err := modinv.InvMod(dec("6"), dec("9"))
			return err
		})},
		{"rsa message not less than modulus", expectKind(rsaerr.DomainError, func() error {
			pub, err := rsa.NewKey(dec(smallModulus), dec(smallExponent), false)
			if err != nil {
				return err
			}
			_, err = rsa.Encrypt(pub, dec(smallModulus), nil)
			return err
		})},
		{"rsa zero modulus key", expectKind(rsaerr.ZeroModulus, func() error {
			_, err := rsa.NewKey(bigint.Zero(), dec(smallExponent), false)
			return err
		})},
	}
}

func newBoundaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boundary",
		Short: "Confirm seven error kinds are reachable and correctly classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(boundaryScenarios(), newLogger())
		},
	}
}
