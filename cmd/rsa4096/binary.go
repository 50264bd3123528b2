package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
)

func binaryScenarios() []scenario {
	values := []string{"0", "255", "256", "65535", demoMessageBits}
	scenarios := make([]scenario, 0, len(values))
	for _, v := range values {
		v := v
		scenarios = append(scenarios, scenario{
			name: "bytes round trip " + v,
			run: func(*zap.SugaredLogger) error {
				want := dec(v)
				b := codec.Bytes(want)
				back, err := codec.FromBytes(b)
				if err != nil {
					return err
				}
				if bigint.Compare(back, want) != bigint.Equal {
					return errMismatch(codec.DecimalString(want), codec.DecimalString(back))
				}
				return nil
			},
		})
	}
	return scenarios
}

func newBinaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "binary",
		Short: "Round-trip values through the big-endian byte codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(binaryScenarios(), newLogger())
		},
	}
}
