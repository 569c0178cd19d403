package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/arith-checker/commands"
	"github.com/gruntwork-io/go-commons/logging"
)

// This variable is set at build time using -ldflags parameters. For example:
//
// go build -ldflags "-X main.VERSION=$TAG"
var VERSION string

// Runs the root command. Any failure, including a failed assertion, is logged and turned into exit code 1.
func main() {
	app := commands.CreateCli(VERSION)
	err := app.Run(context.Background(), os.Args)
	if err != nil {
		logger := logging.GetLogger("arith-checker", VERSION).Logger
		logger.Out = os.Stderr
		logger.Error(commands.FormatError(err))
		os.Exit(1)
	}
}
