package triage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a new Gemini triage client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("triage: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("triage: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

// Analyze sends the symptom description to Gemini and returns its suggestion.
func (c *GeminiClient) Analyze(ctx context.Context, symptoms string) (string, error) {
	prompt := fmt.Sprintf("Analise os seguintes sintomas e sugira a especialidade médica mais adequada. "+
		"Seja empático e inclua um aviso de que isso não substitui uma consulta médica. "+
		"Sintomas: %q. "+
		"Responda em Português do Brasil com um formato estruturado.", symptoms)
	return c.generate(ctx, prompt)
}

// RecommendSpecialists asks Gemini for specialties matching a search query.
func (c *GeminiClient) RecommendSpecialists(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf("O usuário está procurando por: %q. "+
		"Com base nisso, sugira 3 especialidades médicas que poderiam ajudar e explique o porquê de forma curta.", query)
	return c.generate(ctx, prompt)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("triage: gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("triage: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("triage: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(out.String())
	if reply == "" {
		return "", errors.New("triage: gemini returned empty text")
	}
	return reply, nil
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
