package services

import (
	"context"
	"fmt"
	"strings"

	"textlens-backend/internal/models"
)

// completionClient is the single round trip to the generative API.
// GeminiService implements it; tests inject stubs.
type completionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type AnalysisService struct {
	ai completionClient
}

func NewAnalysisService(ai completionClient) *AnalysisService {
	return &AnalysisService{ai: ai}
}

// Analyze detects the input type, builds the matching prompt, makes one
// completion call, and parses the reply. It fails only on empty input or an
// empty upstream reply; parse anomalies degrade into a fallback result.
func (s *AnalysisService) Analyze(ctx context.Context, input string, opts models.AnalysisOptions) (*models.AnalysisResult, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("input text is empty")
	}

	if opts.MaxScore <= 0 {
		opts.MaxScore = 100
	}
	if opts.AnalysisType == "" {
		opts.AnalysisType = "all"
	}

	isCode, language := DetectCode(input)
	if opts.Criteria == "code" {
		isCode = true
	}
	if opts.Language != "" {
		language = opts.Language
	}

	var prompt string
	if isCode {
		prompt = buildCodeAnalysisPrompt(input, opts, language)
	} else {
		prompt = buildTextAnalysisPrompt(input, opts)
	}

	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("no response from the AI service")
	}

	if isCode {
		return parseCodeAnalysisResponse(raw, opts.MaxScore), nil
	}
	return parseTextAnalysisResponse(raw, opts.MaxScore), nil
}
