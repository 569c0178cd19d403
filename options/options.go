package options

import (
	"io"

	"github.com/gruntwork-io/arith-checker/checks"
	"github.com/sirupsen/logrus"
)

// Options is the configuration handed from the CLI layer to the runner. It decouples the check run from the CLI
// framework, so the runner can be driven directly from tests with any writer and suite.
type Options struct {
	// Groups restricts the run to the named check groups. Empty means all of them.
	Groups []string
	// Out receives the status lines. The logger writes elsewhere.
	Out    io.Writer
	Logger *logrus.Logger
}

// Suite resolves the default suite against the configured group filter.
func (opts *Options) Suite() (checks.Suite, error) {
	return checks.Default().Select(opts.Groups)
}
