package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyayasetu/nyayasetu/internal/gateway"
	"github.com/nyayasetu/nyayasetu/internal/handler/dto"
	"github.com/nyayasetu/nyayasetu/internal/model"
	"github.com/nyayasetu/nyayasetu/internal/service"
)

// ChatProvider is the service surface the chat handlers depend on.
type ChatProvider interface {
	Ask(ctx context.Context, query string) (string, error)
	SaveExchange(ctx context.Context, userID, query, response string) error
	History(ctx context.Context, userID string) ([]model.Message, error)
	DeleteExchange(ctx context.Context, userID, queryText string) error
}

// ChatHandler handles HTTP requests for the chatbot and chat history.
type ChatHandler struct {
	svc    ChatProvider
	logger *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc ChatProvider, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: logger,
	}
}

// Query handles POST /auth/chatbot/query.
func (h *ChatHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req dto.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.svc.Ask(r.Context(), req.Query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dto.AnswerData{Answer: answer})
}

// SaveHistory handles POST /auth/chat-history.
func (h *ChatHandler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SaveExchange(r.Context(), req.UserID, req.Query, req.Response); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// ListHistory handles GET /auth/chat-history/{userID}.
func (h *ChatHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	messages, err := h.svc.History(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dto.ToMessageResponses(messages))
}

// DeleteHistory handles DELETE /auth/chat-history/{userID}?query=...
func (h *ChatHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	queryText := r.URL.Query().Get("query")
	if queryText == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	if err := h.svc.DeleteExchange(r.Context(), userID, queryText); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("history_deleted", "user_id", userID)

	writeSuccess(w, http.StatusOK, nil)
}

// handleServiceError maps service and gateway errors to HTTP responses.
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrQueryTooShort):
		writeError(w, http.StatusBadRequest, "query must be at least 5 characters")
	case errors.Is(err, service.ErrMissingUserID):
		writeError(w, http.StatusBadRequest, "user id is required")
	case errors.Is(err, service.ErrQueryNotLegal):
		writeError(w, http.StatusForbidden, "only legal questions are supported")
	case errors.Is(err, service.ErrExchangeNotFound):
		writeError(w, http.StatusNotFound, "no matching history entry found")
	case errors.Is(err, gateway.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "quota exceeded, please retry later")
	case errors.Is(err, gateway.ErrNotConfigured):
		h.logger.Error("internal_error", "action", "chatbot_query", "error", err)
		writeError(w, http.StatusInternalServerError, "chat service is not configured")
	default:
		h.logger.Error("internal_error", "action", "chat", "error", err)
		writeError(w, http.StatusInternalServerError, "an internal error occurred")
	}
}
