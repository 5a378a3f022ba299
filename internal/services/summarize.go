package services

import (
	"context"
	"fmt"
	"strings"

	"textlens-backend/internal/models"
)

type summaryStore interface {
	Create(ctx context.Context, s *models.Summary) error
}

type SummarizeService struct {
	ai   completionClient
	repo summaryStore
}

func NewSummarizeService(ai completionClient, repo summaryStore) *SummarizeService {
	return &SummarizeService{ai: ai, repo: repo}
}

const summarizePrompt = "Summarize the following text in a single concise paragraph. Return plain text only, without markdown or headers.\n\n"

// Summarize makes one completion call with the fixed prompt, persists the
// (input, output) pair, and returns the stored record with its generated id
// and timestamp.
func (s *SummarizeService) Summarize(ctx context.Context, text string) (*models.Summary, error) {
	output, err := s.ai.Complete(ctx, summarizePrompt+text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(output) == "" {
		return nil, fmt.Errorf("no response from the AI service")
	}

	summary := &models.Summary{
		InputText:  text,
		OutputText: strings.TrimSpace(output),
	}
	if err := s.repo.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	return summary, nil
}
