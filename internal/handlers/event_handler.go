package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"message-processor/internal/event"
	"message-processor/internal/logging"
	"message-processor/internal/processor"
	"message-processor/pkg/lambda"
)

var _ awslambda.Handler = (*EventHandler)(nil)

// ProcessFunc transforms a message into the response body.
type ProcessFunc func(message string) string

// EventHandler adapts API Gateway proxy events to the message processor.
// It holds no per-invocation state and is safe for concurrent use.
type EventHandler struct {
	logger  logrus.FieldLogger
	process ProcessFunc
}

// NewEventHandler creates a new event handler. A nil logger discards
// output and a nil process defaults to processor.Process.
func NewEventHandler(logger logrus.FieldLogger, process ProcessFunc) *EventHandler {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	if process == nil {
		process = processor.Process
	}
	return &EventHandler{
		logger:  logger,
		process: process,
	}
}

// HandleEvent processes one raw event. It never panics and never fails:
// client mistakes yield a 400 output, anything else a 500 output.
func (h *EventHandler) HandleEvent(ctx context.Context, payload []byte) (out lambda.Output) {
	start := time.Now()
	log := logging.WithInvocation(ctx, h.logger)

	defer func() {
		if r := recover(); r != nil {
			log = log.WithField("panic", fmt.Sprint(r))
			out = lambda.NewOutput(http.StatusInternalServerError, internalErrorBody)
		}

		fields := logrus.Fields{
			"status_code": out.StatusCode,
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
		}

		switch {
		case out.IsClientError():
			log.WithFields(fields).WithField("reason", out.Body).Warn("Invocation rejected")
		case !out.OK():
			log.WithFields(fields).Error("Invocation failed")
		default:
			log.WithFields(fields).Info("Invocation completed")
		}
	}()

	ev, err := event.Decode(payload)
	if err != nil {
		return h.errorOutput(fmt.Errorf("%w: %w", ErrInvalidEvent, err))
	}

	message, err := ExtractMessage(ev)
	if err != nil {
		return h.errorOutput(err)
	}

	return lambda.NewOutput(http.StatusOK, h.process(message))
}

// Invoke implements the aws-lambda-go Handler interface. The returned
// error is always nil so the runtime never reports a function error.
func (h *EventHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	out := h.HandleEvent(ctx, payload)

	data, err := json.Marshal(out)
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode output")
		return []byte(`{"statusCode":500,"body":"` + internalErrorBody + `"}`), nil
	}
	return data, nil
}

func (h *EventHandler) errorOutput(err error) lambda.Output {
	status := StatusFor(err)
	if status >= 500 {
		return lambda.NewOutput(status, internalErrorBody)
	}
	return lambda.NewOutput(status, err.Error())
}
