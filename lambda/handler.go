// Package lambda adapts pagetext.Service to AWS Lambda behind an API Gateway
// proxy integration.
package lambda

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/fwojciec/pagetext"
)

// Handler translates API Gateway proxy events into extraction requests.
type Handler struct {
	service pagetext.Service
	logger  *slog.Logger
}

// NewHandler creates a Handler calling service for every event.
// If logger is nil, slog.Default() is used.
func NewHandler(service pagetext.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Start hands the handler to the Lambda runtime. It blocks forever.
func (h *Handler) Start() {
	lambda.Start(h.Handle)
}

// Handle processes one API Gateway proxy event. Failures are reported in the
// response; the returned error is always nil so API Gateway never sees a
// bare Lambda error.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("received event",
		"method", req.HTTPMethod,
		"path", req.Path,
		"query", req.QueryStringParameters,
	)

	if req.HTTPMethod == http.MethodOptions {
		return response(http.StatusNoContent, ""), nil
	}

	// A present but empty link is left to the service to reject.
	link, ok := req.QueryStringParameters[pagetext.LinkParam]
	if !ok {
		h.logger.Error("missing link query parameter")
		return jsonResponse(http.StatusBadRequest, pagetext.ErrorResponse{Error: pagetext.MissingLinkMessage}), nil
	}

	result, err := h.service.ExtractFromURL(ctx, link)
	if err != nil {
		h.logger.Error("error processing url", "url", link, "code", pagetext.ErrorCode(err), "err", err)
		return jsonResponse(pagetext.StatusCode(err), pagetext.ErrorResponse{Error: pagetext.ResponseMessage(err)}), nil
	}

	return jsonResponse(http.StatusOK, result), nil
}

func jsonResponse(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Error extracting content: failed to encode response"}`)
	}
	return response(status, string(body))
}

func response(status int, body string) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "GET",
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}
