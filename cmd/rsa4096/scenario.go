package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// scenario is one independently pass/fail named check. Subcommands that
// run several scenarios (verify, test, boundary, roundtrip) aggregate
// every failure via multierror instead of stopping at the first one, so
// a single run reports the complete set of problems.
type scenario struct {
	name string
	run  func(logger *zap.SugaredLogger) error
}

// errMismatch reports an expected-vs-actual scenario assertion failure.
func errMismatch(want, got string) error {
	return fmt.Errorf("expected %s, got %s", want, got)
}

// runScenarios executes every scenario, printing a pass/fail line for
// each, and returns a combined error (nil if all passed).
func runScenarios(scenarios []scenario, logger *zap.SugaredLogger) error {
	var result *multierror.Error
	for _, s := range scenarios {
		if err := s.run(logger); err != nil {
			fmt.Printf("FAIL %s: %v\n", s.name, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		fmt.Printf("PASS %s\n", s.name)
	}
	if result == nil {
		return nil
	}
	return result.ErrorOrNil()
}
