package services

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const stabilityEndpoint = "https://api.stability.ai/v2beta/stable-image/generate/core"

// ImageSizes are the sizes offered by the UI selector; the first is the default.
var ImageSizes = []string{"512x512", "768x512", "512x768", "1024x1024"}

type StabilityService struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewStabilityService(apiKey string) *StabilityService {
	return &StabilityService{
		apiKey:     apiKey,
		endpoint:   stabilityEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateImage issues one text-to-image call and returns the raw PNG bytes.
// Any non-200 response becomes a ProviderError carrying the status code and
// body verbatim.
func (s *StabilityService) GenerateImage(ctx context.Context, prompt, size string) ([]byte, error) {
	if s.apiKey == "" {
		return nil, &MissingKeyError{Provider: "stability"}
	}

	width, height, err := ParseSize(size)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	fields := map[string]string{
		"prompt":        prompt,
		"mode":          "text-to-image",
		"output_format": "png",
		"width":         strconv.Itoa(width),
		"height":        strconv.Itoa(height),
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("provider returned an undecodable image: %w", err)
	}

	return data, nil
}

// ParseSize splits a "<width>x<height>" size string into its dimensions.
func ParseSize(size string) (width, height int, err error) {
	parts := strings.Split(size, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected <width>x<height>", size)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in size %q", size)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in size %q", size)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q must have positive dimensions", size)
	}
	return width, height, nil
}
