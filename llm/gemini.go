package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

var ErrEmptyCompletion = errors.New("model returned empty content")

// Gemini implements Client on top of the Gemini API. The underlying
// genai.Client is created once at process start and shared read-only.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini wraps an initialized genai client. model is the Gemini
// model name, e.g. "gemini-2.0-flash".
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{
		client: client,
		model:  model,
	}
}

// Complete runs a single generateContent call. The request context is
// propagated so a canceled request cancels the in-flight model call.
func (g *Gemini) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(float32(req.Temperature))
	if req.ForceJSON {
		model.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}

	var builder strings.Builder
	for i, candidate := range resp.Candidates {
		if candidate.FinishReason != genai.FinishReasonStop && candidate.FinishReason != genai.FinishReasonUnspecified {
			log.Printf("Warning: candidate %d finished with reason %s", i, candidate.FinishReason)
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}

	result := builder.String()
	if result == "" {
		return "", ErrEmptyCompletion
	}

	return result, nil
}
