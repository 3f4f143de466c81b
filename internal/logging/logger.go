// Package logging builds the logrus loggers handed to each entry point.
// Nothing here touches the logrus standard logger.
package logging

import (
	"context"
	"io"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"message-processor/internal/config"
)

// New returns a logger writing to out, configured from cfg.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

// NewConsole returns a logger that prints bare messages, one per line.
func NewConsole(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&MessageFormatter{})
	return logger
}

// MessageFormatter renders only the entry message followed by a newline.
type MessageFormatter struct{}

// Format implements logrus.Formatter.
func (f *MessageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line := make([]byte, 0, len(entry.Message)+1)
	line = append(line, entry.Message...)
	return append(line, '\n'), nil
}

// WithInvocation annotates logger with the invocation id carried by ctx.
// Outside of Lambda a random id is generated.
func WithInvocation(ctx context.Context, logger logrus.FieldLogger) *logrus.Entry {
	fields := logrus.Fields{}

	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		fields["request_id"] = lc.AwsRequestID
		fields["function_arn"] = lc.InvokedFunctionArn
	} else {
		fields["request_id"] = uuid.NewString()
	}

	if name := lambdacontext.FunctionName; name != "" {
		fields["function_name"] = name
	}

	return logger.WithFields(fields)
}
