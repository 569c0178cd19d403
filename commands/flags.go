package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gruntwork-io/arith-checker/options"
	"github.com/gruntwork-io/go-commons/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const ENV_VAR_NAME_DEBUG_MODE = "ARITH_CHECKER_DEBUG"

var groupFlag = &cli.StringSliceFlag{
	Name:  "group",
	Usage: "[Optional] Only run the named check group. Specify one or more times. Runs every group if omitted. Example: multiply",
}

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: fmt.Sprintf("[Optional] Set the log level to `LEVEL`. Must be one of: %v", logrus.AllLevels),
	Value: logrus.InfoLevel.String(),
}

var defaultFlags = []cli.Flag{
	groupFlag,
	logLevelFlag,
}

// parseOptions maps the urfave/cli/v3 flags onto the Options struct consumed by the runner.
func parseOptions(cmd *cli.Command) (*options.Options, error) {
	logger := logging.GetLogger("arith-checker", "v0.0.0")

	// Stdout is reserved for the status lines, so keep log output on stderr.
	logger.Logger.Out = os.Stderr

	logLevel := cmd.String(logLevelFlag.Name)
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, InvalidLogLevel(logLevel)
	}
	logger.Logger.SetLevel(level)

	return &options.Options{
		Groups: cmd.StringSlice(groupFlag.Name),
		Out:    cmd.Root().Writer,
		Logger: logger.Logger,
	}, nil
}

// Assertion failures and bad flags read better as a single line than as a stack trace. Debug mode always shows the
// full stack trace.
func isDebugMode() bool {
	envVar, _ := os.LookupEnv(ENV_VAR_NAME_DEBUG_MODE)
	envVar = strings.ToLower(envVar)
	return envVar == "true"
}

// Custom error types

type InvalidLogLevel string

func (invalidLogLevel InvalidLogLevel) Error() string {
	return fmt.Sprintf("The log-level value \"%s\" is invalid", string(invalidLogLevel))
}
