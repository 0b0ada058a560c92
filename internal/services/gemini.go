package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Preferred models, tried in order before falling back to the listing call.
var defaultPreferredModels = []string{
	"models/gemini-1.5-flash",
	"models/gemini-1.5-flash-8b",
	"models/gemini-1.5-pro",
}

const preferredVersionTag = "gemini-1.5"

// ModelEntry is one model from the provider listing.
type ModelEntry struct {
	Name              string
	GenerationMethods []string
}

// modelCatalog abstracts local handle construction and the provider's
// model-listing call so selection can run without a network.
type modelCatalog interface {
	TryModel(name string) error
	ListModels(ctx context.Context) ([]ModelEntry, error)
}

// contentGenerator issues a single generation call against a named model.
type contentGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type GeminiService struct {
	apiKey    string
	client    *genai.Client
	catalog   modelCatalog
	generator contentGenerator
	preferred []string
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	backend := &genaiBackend{client: client}
	return &GeminiService{
		apiKey:    apiKey,
		client:    client,
		catalog:   backend,
		generator: backend,
		preferred: defaultPreferredModels,
	}, nil
}

// NewDisabledGeminiService returns a service whose calls fail with a
// missing-credential error, for when no API key is configured.
func NewDisabledGeminiService() *GeminiService {
	return &GeminiService{}
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Chat sends one prompt and returns the trimmed reply. An empty reply is a
// valid "no answer" result, not an error. If modelOverride is empty a model
// is resolved via the preference list and listing fallback.
func (s *GeminiService) Chat(ctx context.Context, prompt, modelOverride string) (string, error) {
	if s.apiKey == "" {
		return "", &MissingKeyError{Provider: "gemini"}
	}

	model := modelOverride
	if model == "" {
		selected, err := selectModel(ctx, s.catalog, s.preferred, preferredVersionTag)
		if err != nil {
			return "", err
		}
		model = selected
	}

	text, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// selectModel returns the first preferred name the catalog accepts without a
// network call. Otherwise it consults the provider listing: among models
// supporting generateContent, one whose name contains versionTag wins, then
// the first supporting model. Listing failures surface as ErrNoUsableModel.
func selectModel(ctx context.Context, catalog modelCatalog, preferred []string, versionTag string) (string, error) {
	for _, name := range preferred {
		if err := catalog.TryModel(name); err == nil {
			return name, nil
		}
	}

	models, err := catalog.ListModels(ctx)
	if err == nil {
		for _, m := range models {
			if supportsGeneration(m) && strings.Contains(m.Name, versionTag) {
				return m.Name, nil
			}
		}
		for _, m := range models {
			if supportsGeneration(m) {
				return m.Name, nil
			}
		}
	}

	return "", ErrNoUsableModel
}

func supportsGeneration(m ModelEntry) bool {
	for _, method := range m.GenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// genaiBackend adapts *genai.Client to the catalog and generator interfaces.
type genaiBackend struct {
	client *genai.Client
}

func (b *genaiBackend) TryModel(name string) error {
	// Handle construction never reaches the network; reject names the
	// client cannot address.
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty model name")
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("invalid model name %q", name)
	}
	_ = b.client.GenerativeModel(name)
	return nil
}

func (b *genaiBackend) ListModels(ctx context.Context) ([]ModelEntry, error) {
	var entries []ModelEntry
	it := b.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, ModelEntry{
			Name:              info.Name,
			GenerationMethods: info.SupportedGenerationMethods,
		})
	}
	return entries, nil
}

func (b *genaiBackend) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := b.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
