// Package command implements the message-processor command line.
package command

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"message-processor/internal/logging"
	"message-processor/internal/processor"
)

const messageFlagName = "message"

// NewCommand builds the root command. Results are logged to out and
// usage or flag errors are written to errOut.
func NewCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "message-processor",
		Usage:     "process a message and print the result",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     messageFlagName,
				Aliases:  []string{"m"},
				Usage:    "Message",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := logging.NewConsole(out, logrus.InfoLevel)

			result := processor.Process(cmd.String(messageFlagName))
			logger.Info(result)
			return nil
		},
	}
}

// Run executes the command with the given process arguments.
func Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	return NewCommand(out, errOut).Run(ctx, args)
}
