package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"boardimport/internal/importer"
	"boardimport/internal/model"
	"boardimport/pkg/gemini"
)

// Extract sends free-form text to the extraction service and returns the
// ordered candidate list verbatim. Empty input is rejected before any call is
// made; an empty candidate list is a valid result.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input importer.ExtractInput) (importer.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return importer.ExtractOutput{}, importer.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Extract: user=%s input_length=%d", sc.UserID, len(input.Text))

	extracted, err := uc.extractWithLLM(ctx, input.Text)
	if err != nil {
		return importer.ExtractOutput{}, fmt.Errorf("failed to extract tasks: %w", err)
	}

	uc.l.Infof(ctx, "Extract: LLM returned %d candidates", len(extracted))

	candidates := make([]model.TaskCandidate, 0, len(extracted))
	for _, t := range extracted {
		candidates = append(candidates, candidateFromExtracted(t))
	}

	return importer.ExtractOutput{Candidates: candidates}, nil
}

// extractWithLLM sends the raw text to Gemini and returns the parsed tasks.
func (uc *implUseCase) extractWithLLM(ctx context.Context, rawText string) ([]gemini.ExtractedTask, error) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	nowStr := time.Now().In(loc).Format(time.RFC3339)
	prompt := gemini.BuildTaskExtractionPrompt(rawText, nowStr)

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // Low temperature for deterministic JSON output
			MaxOutputTokens: 2048,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from LLM")
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text

	cleanedJSON := sanitizeJSONResponse(responseText)

	var tasks []gemini.ExtractedTask
	if err := json.Unmarshal([]byte(cleanedJSON), &tasks); err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q Cleaned=%q", responseText, cleanedJSON)
		return nil, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	return tasks, nil
}
