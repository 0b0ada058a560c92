package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"toolbox-backend/internal/models"
	"toolbox-backend/internal/services"
)

type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt, size string) ([]byte, error)
}

type ImageHandler struct {
	stability imageGenerator
}

func NewImageHandler(stability imageGenerator) *ImageHandler {
	return &ImageHandler{stability: stability}
}

func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Prompt is required", r))
		return
	}

	if req.Size == "" {
		req.Size = services.ImageSizes[0]
	}
	if _, _, err := services.ParseSize(req.Size); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	data, err := h.stability.GenerateImage(r.Context(), req.Prompt, req.Size)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", `inline; filename="stability.png"`)
	w.Write(data)
}
