package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/pagetext"
)

// Handler serves extraction requests over plain net/http. It is the adapter
// used by Google Cloud Functions and the Azure Functions custom handler.
type Handler struct {
	service pagetext.Service
	logger  *slog.Logger
}

// NewHandler creates a Handler calling service for every request.
// If logger is nil, slog.Default() is used.
func NewHandler(service pagetext.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// ServeHTTP answers preflight requests with 204 and otherwise extracts the
// page named by the link query parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		for k, v := range pagetext.PreflightHeaders() {
			w.Header().Set(k, v)
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	for k, v := range pagetext.CORSHeaders() {
		w.Header().Set(k, v)
	}

	link := r.URL.Query().Get(pagetext.LinkParam)
	if link == "" {
		writeJSON(w, http.StatusBadRequest, pagetext.ErrorResponse{Error: pagetext.MissingLinkMessage})
		return
	}

	result, err := h.service.ExtractFromURL(r.Context(), link)
	if err != nil {
		status := pagetext.StatusCode(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("error processing url", "url", link, "code", pagetext.ErrorCode(err), "err", err)
		}
		writeJSON(w, status, pagetext.ErrorResponse{Error: pagetext.ResponseMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
