package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolbox-backend/internal/models"
	"toolbox-backend/internal/services"
)

type stubTextGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
	lastModel  string
}

func (s *stubTextGenerator) Chat(ctx context.Context, prompt, model string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastModel = model
	return s.reply, s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestChatHandler_EmptyMessageNeverInvokesService(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty message", ""},
		{"whitespace only", "   \t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubTextGenerator{reply: "answer"}
			handler := NewChatHandler(stub)

			rr := postJSON(t, handler.Send, "/api/v1/chat", models.ChatRequest{Message: tc.message})

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
			if stub.calls != 0 {
				t.Errorf("Expected no service calls, got %d", stub.calls)
			}
			if resp := decodeError(t, rr); resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
			}
		})
	}
}

func TestChatHandler_ReturnsReply(t *testing.T) {
	stub := &stubTextGenerator{reply: "answer"}
	handler := NewChatHandler(stub)

	rr := postJSON(t, handler.Send, "/api/v1/chat", models.ChatRequest{Message: "hello", Model: "models/manual"})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != "answer" {
		t.Errorf("Expected reply %q, got %q", "answer", resp.Reply)
	}
	if stub.lastPrompt != "hello" {
		t.Errorf("Expected prompt %q, got %q", "hello", stub.lastPrompt)
	}
	if stub.lastModel != "models/manual" {
		t.Errorf("Expected model override to pass through, got %q", stub.lastModel)
	}
}

func TestChatHandler_EmptyReplyIsOK(t *testing.T) {
	stub := &stubTextGenerator{reply: ""}
	handler := NewChatHandler(stub)

	rr := postJSON(t, handler.Send, "/api/v1/chat", models.ChatRequest{Message: "hello"})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for empty reply, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != "" {
		t.Errorf("Expected empty reply, got %q", resp.Reply)
	}
}

func TestChatHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedAPI  string
	}{
		{"missing key", &services.MissingKeyError{Provider: "gemini"}, http.StatusServiceUnavailable, "MISSING_API_KEY"},
		{"no usable model", services.ErrNoUsableModel, http.StatusBadGateway, "NO_USABLE_MODEL"},
		{"provider failure", &services.ProviderError{StatusCode: 429, Body: "quota"}, http.StatusBadGateway, "PROVIDER_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewChatHandler(&stubTextGenerator{err: tc.err})

			rr := postJSON(t, handler.Send, "/api/v1/chat", models.ChatRequest{Message: "hello"})

			if rr.Code != tc.expectedCode {
				t.Errorf("Expected status %d, got %d", tc.expectedCode, rr.Code)
			}
			if resp := decodeError(t, rr); resp.Error.Code != tc.expectedAPI {
				t.Errorf("Expected code %q, got %q", tc.expectedAPI, resp.Error.Code)
			}
		})
	}
}

func TestChatHandler_InvalidBody(t *testing.T) {
	stub := &stubTextGenerator{}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.Send(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if stub.calls != 0 {
		t.Errorf("Expected no service calls, got %d", stub.calls)
	}
}
