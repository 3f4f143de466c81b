package lambda

import (
	"context"
	"net/http"
)

// Output is the API Gateway proxy-integration response returned for every
// invocation. It serialises to exactly the statusCode and body keys.
type Output struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewOutput builds an Output
func NewOutput(statusCode int, body string) Output {
	return Output{StatusCode: statusCode, Body: body}
}

// OK reports whether the output carries a 2xx status
func (o Output) OK() bool {
	return o.StatusCode >= http.StatusOK && o.StatusCode < http.StatusMultipleChoices
}

// IsClientError reports whether the output carries a 4xx status
func (o Output) IsClientError() bool {
	return o.StatusCode >= http.StatusBadRequest && o.StatusCode < http.StatusInternalServerError
}

// EventHandlerFunc turns a raw event payload into an Output. Implementations
// must not fail: every problem is reported through the Output.
type EventHandlerFunc func(ctx context.Context, payload []byte) Output
