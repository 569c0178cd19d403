package runner

import (
	"context"
	"fmt"

	"github.com/gruntwork-io/arith-checker/checks"
	"github.com/gruntwork-io/arith-checker/options"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

// AssertionFailed is returned when a case's computed value does not equal its expected value.
type AssertionFailed struct {
	Group    string
	Case     string
	Message  string
	Expected float64
	Actual   float64
}

func (err AssertionFailed) Error() string {
	return fmt.Sprintf("Assertion failed: %s (got %v)", err.Message, err.Actual)
}

// Run evaluates every group in the suite in order and writes the status lines to opts.Out. It stops at the first
// failing case: that group's success line, every later group, and the final line are never written.
func Run(ctx context.Context, opts *options.Options, suite checks.Suite) error {
	logger := opts.Logger

	for _, group := range suite {
		if err := writeLine(opts, "Testing %s function...", group.Name); err != nil {
			return err
		}

		for _, c := range group.Cases {
			if err := ctx.Err(); err != nil {
				return err
			}

			actual := c.Eval()
			logger.WithFields(logrus.Fields{
				"group":    group.Name,
				"case":     c.Name,
				"expected": c.Expected,
				"actual":   actual,
			}).Debug("Evaluated case")

			if actual != c.Expected {
				logger.Warnf("Case %s FAILED: expected %v, got %v", c.Name, c.Expected, actual)
				return errors.WithStackTrace(AssertionFailed{
					Group:    group.Name,
					Case:     c.Name,
					Message:  c.Message,
					Expected: c.Expected,
					Actual:   actual,
				})
			}
		}

		if err := writeLine(opts, "%s() tests passed!", group.Name); err != nil {
			return err
		}
	}

	return writeLine(opts, "All tests passed!")
}

func writeLine(opts *options.Options, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(opts.Out, format+"\n", args...)
	if err != nil {
		return errors.WithStackTrace(err)
	}
	return nil
}
