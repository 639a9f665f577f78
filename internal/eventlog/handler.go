// Package eventlog implements the Lambda event handler: it logs the received
// event as indented JSON and answers every invocation with the same response.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"

	"s3-upload-logger/internal/config"
)

// Response is the result record returned to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler holds only values fixed at cold start, so one instance serves
// concurrent invocations.
type Handler struct {
	logger   logr.Logger
	label    string
	indent   int
	response Response
}

// NewHandler creates a handler from the loaded configuration
func NewHandler(logger logr.Logger, cfg *config.Config) (*Handler, error) {
	body, err := EncodeBody(cfg.ResponseMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to build response: %w", err)
	}

	return &Handler{
		logger: logger,
		label:  cfg.EventLabel,
		indent: cfg.Indent,
		response: Response{
			StatusCode: http.StatusOK,
			Body:       body,
		},
	}, nil
}

// Handle logs the label line followed by the rendered event and returns the
// fixed response. The response never depends on the event. An event with no
// JSON encoding fails the invocation with ErrSerialization.
func (h *Handler) Handle(ctx context.Context, event any) (Response, error) {
	h.logger.Info(h.label)

	rendered, err := Render(event, h.indent)
	if err != nil {
		return Response{}, err
	}
	h.logger.Info(rendered)

	if debug := h.logger.V(1); debug.Enabled() {
		describe(ctx, debug, event)
	}

	return h.response, nil
}

// HandleRaw is the entrypoint given to lambda.Start. Taking the payload as
// raw bytes keeps it exactly as the event source sent it.
func (h *Handler) HandleRaw(ctx context.Context, event json.RawMessage) (Response, error) {
	return h.Handle(ctx, event)
}
