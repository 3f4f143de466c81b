package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"message-processor/internal/command"
	"message-processor/internal/logging"
)

// exitUsage matches the status argument parsers conventionally use for usage errors.
const exitUsage = 2

func main() {
	if err := command.Run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		logger := logging.NewConsole(os.Stderr, logrus.ErrorLevel)
		logger.Errorf("Error: %v", err)
		logger.Error("Try 'message-processor --help' for help.")
		logger.Exit(exitUsage)
	}
}
