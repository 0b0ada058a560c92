package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	// Model optionally pins a specific model name instead of automatic selection.
	Model string `json:"model,omitempty"`
}

// ChatResponse is the reply from the AI chat. An empty Reply is a valid
// "no answer" result, not an error.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GenerateImageRequest is the payload sent to the image endpoint.
type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"` // "<width>x<height>", e.g. "512x512"
}

// StatusResponse reports which provider features have a credential configured.
type StatusResponse struct {
	Gemini     bool     `json:"gemini"`
	Stability  bool     `json:"stability"`
	ImageSizes []string `json:"image_sizes"`
}

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
