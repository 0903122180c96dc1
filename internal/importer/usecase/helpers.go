package usecase

import (
	"regexp"
	"strings"
	"time"

	"boardimport/internal/model"
	"boardimport/pkg/gemini"
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// candidateFromExtracted maps an LLM-extracted task to a candidate. The due
// date is parsed when present and dropped when malformed.
func candidateFromExtracted(t gemini.ExtractedTask) model.TaskCandidate {
	cand := model.TaskCandidate{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
	}
	if t.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, t.DueDate); err == nil {
			cand.DueDate = &due
		}
	}
	return cand
}

// destinationList picks the list with the smallest position. Ties go to the
// earliest element in response order, which the repository preserves.
func destinationList(lists []model.List) (model.List, bool) {
	if len(lists) == 0 {
		return model.List{}, false
	}

	dest := lists[0]
	for _, l := range lists[1:] {
		if l.Position < dest.Position {
			dest = l
		}
	}
	return dest, true
}

// countCardsInList counts the cards currently in the given list.
func countCardsInList(cards []model.Card, listID string) int {
	n := 0
	for _, c := range cards {
		if c.ListID == listID {
			n++
		}
	}
	return n
}
