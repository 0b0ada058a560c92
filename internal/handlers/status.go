package handlers

import (
	"net/http"

	"toolbox-backend/internal/models"
	"toolbox-backend/internal/services"
)

// StatusHandler feeds the UI's key status lights and size selector.
type StatusHandler struct {
	geminiEnabled    bool
	stabilityEnabled bool
}

func NewStatusHandler(geminiEnabled, stabilityEnabled bool) *StatusHandler {
	return &StatusHandler{
		geminiEnabled:    geminiEnabled,
		stabilityEnabled: stabilityEnabled,
	}
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{
		Gemini:     h.geminiEnabled,
		Stability:  h.stabilityEnabled,
		ImageSizes: services.ImageSizes,
	})
}
