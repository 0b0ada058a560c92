package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"toolbox-backend/internal/models"
)

type textGenerator interface {
	Chat(ctx context.Context, prompt, model string) (string, error)
}

type ChatHandler struct {
	gemini textGenerator
}

func NewChatHandler(gemini textGenerator) *ChatHandler {
	return &ChatHandler{gemini: gemini}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	reply, err := h.gemini.Chat(r.Context(), req.Message, strings.TrimSpace(req.Model))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// An empty reply is a valid "no answer" result; the UI shows a warning.
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
