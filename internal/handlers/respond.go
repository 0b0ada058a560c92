package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolbox-backend/internal/models"
	"toolbox-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps provider-client failures onto the API error
// envelope. Nothing here is fatal; the server stays up for the next attempt.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *services.MissingKeyError
	var provider *services.ProviderError

	switch {
	case errors.As(err, &missing):
		writeJSON(w, http.StatusServiceUnavailable, errorResp("MISSING_API_KEY", missing.Error(), r))
	case errors.Is(err, services.ErrNoUsableModel):
		writeJSON(w, http.StatusBadGateway, errorResp("NO_USABLE_MODEL", err.Error(), r))
	case errors.As(err, &provider):
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", provider.Error(), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", err.Error(), r))
	}
}
