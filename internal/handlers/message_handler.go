package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"message-processor/internal/middleware"
	"message-processor/pkg/lambda"
)

// MessageHandler exposes the event handler over plain HTTP for local use
type MessageHandler struct {
	handleEvent lambda.EventHandlerFunc
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(handleEvent lambda.EventHandlerFunc) *MessageHandler {
	return &MessageHandler{
		handleEvent: handleEvent,
	}
}

// Invoke accepts a raw Lambda event and replies with the handler Output,
// the way the Lambda invoke API does.
func (h *MessageHandler) Invoke(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.handleEvent(c.Request.Context(), payload))
}

// ProcessMessage wraps an HTTP request in an API Gateway proxy event and
// replies with the resulting status code and body.
func (h *MessageHandler) ProcessMessage(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	payload, err := json.Marshal(toProxyRequest(c, body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to build event",
			Message: err.Error(),
		})
		return
	}

	out := h.handleEvent(c.Request.Context(), payload)
	c.Data(out.StatusCode, "text/plain; charset=utf-8", []byte(out.Body))
}

// Health reports liveness
func (h *MessageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "message-processor",
		"timestamp": time.Now().UTC(),
	})
}

func toProxyRequest(c *gin.Context, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(c.Request.Header))
	multiHeaders := make(map[string][]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
		multiHeaders[name] = values
	}

	query := c.Request.URL.Query()
	params := make(map[string]string, len(query))
	for name, values := range query {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		Resource:                        c.FullPath(),
		Path:                            c.Request.URL.Path,
		HTTPMethod:                      c.Request.Method,
		Headers:                         headers,
		MultiValueHeaders:               multiHeaders,
		QueryStringParameters:           params,
		MultiValueQueryStringParameters: query,
		Body:                            string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:        c.GetString(middleware.RequestIDKey),
			HTTPMethod:       c.Request.Method,
			Path:             c.Request.URL.Path,
			Stage:            "local",
			RequestTimeEpoch: time.Now().UnixMilli(),
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			},
		},
	}
}
