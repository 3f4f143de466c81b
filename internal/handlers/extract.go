package handlers

import (
	"encoding/base64"
	"fmt"

	"message-processor/internal/event"
)

const (
	bodyField    = "body"
	base64Field  = "isBase64Encoded"
	messageField = "message"
)

// ExtractMessage locates the message in an API Gateway proxy event. The
// event's top-level body must be a string holding a JSON object with a
// string message member, optionally base64 encoded when isBase64Encoded
// is true.
func ExtractMessage(ev event.Value) (string, error) {
	if ev.Kind() != event.Object {
		return "", fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidEvent, ev.Kind())
	}

	body, err := ev.Field(bodyField)
	if err != nil || body.IsNull() {
		return "", fmt.Errorf("%w: event has no body", ErrMissingMessage)
	}

	raw, err := body.AsString()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	encoded, err := isBase64Encoded(ev)
	if err != nil {
		return "", err
	}
	if encoded {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return "", fmt.Errorf("%w: body is not valid base64: %v", ErrInvalidBody, err)
		}
		raw = string(decoded)
	}

	payload, err := event.Decode([]byte(raw))
	if err != nil {
		return "", fmt.Errorf("%w: body is not valid JSON: %w", ErrInvalidBody, err)
	}
	if payload.Kind() != event.Object {
		return "", fmt.Errorf("%w: body must be a JSON object, got %s", ErrInvalidBody, payload.Kind())
	}

	message, err := payload.Field(messageField)
	if err != nil || message.IsNull() {
		return "", fmt.Errorf("%w: body has no %q field", ErrMissingMessage, messageField)
	}

	text, err := message.AsString()
	if err != nil {
		return "", fmt.Errorf("%w: %q must be a string, got %s", ErrInvalidMessage, messageField, message.Kind())
	}

	return text, nil
}

func isBase64Encoded(ev event.Value) (bool, error) {
	if !ev.Has(base64Field) {
		return false, nil
	}

	flag, err := ev.Field(base64Field)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if flag.IsNull() {
		return false, nil
	}

	encoded, err := flag.AsBool()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	return encoded, nil
}
