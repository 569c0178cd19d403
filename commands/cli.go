package commands

import (
	"context"
	"os"

	"github.com/gruntwork-io/arith-checker/runner"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/urfave/cli/v3"
)

// CreateCli initializes the root urfave/cli/v3 Command and maps the default action to runChecks. Status lines are
// written to the command's Writer, which defaults to stdout.
func CreateCli(version string) *cli.Command {
	app := &cli.Command{}

	app.CustomHelpTemplate = ` NAME:
    {{.Name}} - {{.Usage}}

 USAGE:
    {{.Name}} [options]

 OPTIONS:
    {{range .VisibleFlags}}{{.}}
    {{end}}{{if .Version}}
 VERSION:
    {{.Version}}
    {{end}}
`

	app.Name = "arith-checker"
	app.Version = version
	app.Usage = "Runs the built-in add and multiply assertions and reports the result on stdout."
	app.Writer = os.Stdout
	app.Flags = defaultFlags
	app.Action = runChecks

	return app
}

func runChecks(ctx context.Context, cmd *cli.Command) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	suite, err := opts.Suite()
	if err != nil {
		return errors.WithStackTrace(err)
	}
	opts.Logger.Debugf("Running check groups: %v", suite.Names())

	return runner.Run(ctx, opts, suite)
}

// FormatError renders err for the terminal: the bare message normally, the full stack trace in debug mode.
func FormatError(err error) string {
	if isDebugMode() {
		return errors.PrintErrorWithStackTrace(err)
	}
	return err.Error()
}
