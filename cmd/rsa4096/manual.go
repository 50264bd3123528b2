package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blck-snwmn/rsa4096/rsa"
)

// manualMessage is the illustrative plaintext encrypted and decrypted by
// the manual subcommand against the fixed n=143, e=7, d=103 key.
const manualMessage = "42"

func newManualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manual",
		Short: "Walk through one encrypt/decrypt call against a fixed demo key",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			pub, err := rsa.NewKey(dec(wideModulus), dec(widePublicExp), false)
			if err != nil {
				return err
			}
			priv, err := rsa.NewKey(dec(wideModulus), dec(widePrivateExp), true)
			if err != nil {
				return err
			}

			fmt.Printf("n=%s e=%s d=%s m=%s\n", wideModulus, widePublicExp, widePrivateExp, manualMessage)
			c, err := rsa.EncryptDecimal(pub, manualMessage, logger)
			if err != nil {
				return err
			}
			fmt.Printf("c=%s\n", c)

			back, err := rsa.DecryptDecimal(priv, c, logger)
			if err != nil {
				return err
			}
			fmt.Printf("decrypted=%s\n", back)

			if back != manualMessage {
				return errMismatch(manualMessage, back)
			}
			return nil
		},
	}
}
