package http

import (
	"time"

	"boardimport/internal/importer"
	"boardimport/internal/model"
	"boardimport/pkg/response"
)

// ---- Extract ----

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (req extractReq) toInput() importer.ExtractInput {
	return importer.ExtractInput{Text: req.Text}
}

type candidateItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
}

type extractResp struct {
	Candidates []candidateItem `json:"candidates"`
}

func (h *handler) newExtractResp(output importer.ExtractOutput) extractResp {
	items := make([]candidateItem, 0, len(output.Candidates))
	for _, cand := range output.Candidates {
		items = append(items, newCandidateItem(cand))
	}
	return extractResp{Candidates: items}
}

func newCandidateItem(cand model.TaskCandidate) candidateItem {
	item := candidateItem{
		Title:       cand.Title,
		Description: cand.Description,
		Priority:    cand.EffectivePriority(),
	}
	if cand.DueDate != nil {
		item.DueDate = cand.DueDate.Format(time.RFC3339)
	}
	return item
}

// ---- Import ----

type importReq struct {
	BoardID    string          `json:"board_id" binding:"required"`
	Candidates []candidateItem `json:"candidates"`
}

func (req importReq) toInput() (importer.ImportInput, error) {
	candidates := make([]model.TaskCandidate, 0, len(req.Candidates))
	for _, item := range req.Candidates {
		cand := model.TaskCandidate{
			Title:       item.Title,
			Description: item.Description,
			Priority:    item.Priority,
		}
		if item.DueDate != "" {
			due, err := time.Parse(time.RFC3339, item.DueDate)
			if err != nil {
				return importer.ImportInput{}, errWrongBody
			}
			cand.DueDate = &due
		}
		candidates = append(candidates, cand)
	}

	return importer.ImportInput{
		BoardID:    req.BoardID,
		Candidates: candidates,
	}, nil
}

type cardItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ListID      string   `json:"list_id"`
	BoardID     string   `json:"board_id"`
	Position    int      `json:"position"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}

func newCardItem(card model.Card) cardItem {
	item := cardItem{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		ListID:      card.ListID,
		BoardID:     card.BoardID,
		Position:    card.Position,
		Priority:    card.Priority,
		Labels:      card.Labels,
	}
	if card.DueDate != nil {
		item.DueDate = card.DueDate.Format(time.RFC3339)
	}
	return item
}

type listItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	BoardID  string `json:"board_id"`
	Position int    `json:"position"`
}

type snapshotItem struct {
	Lists []listItem `json:"lists"`
	Cards []cardItem `json:"cards"`
}

type importResp struct {
	BatchID      string        `json:"batch_id"`
	BoardID      string        `json:"board_id"`
	ListID       string        `json:"list_id"`
	CreatedCards []cardItem    `json:"created_cards"`
	Snapshot     *snapshotItem `json:"snapshot,omitempty"`
}

func (h *handler) newImportResp(output importer.ImportOutput) importResp {
	resp := importResp{
		BatchID:      output.BatchID,
		BoardID:      output.BoardID,
		ListID:       output.ListID,
		CreatedCards: make([]cardItem, 0, len(output.CreatedCards)),
	}
	for _, card := range output.CreatedCards {
		resp.CreatedCards = append(resp.CreatedCards, newCardItem(card))
	}
	if output.Snapshot != nil {
		snap := snapshotItem{
			Lists: make([]listItem, 0, len(output.Snapshot.Lists)),
			Cards: make([]cardItem, 0, len(output.Snapshot.Cards)),
		}
		for _, l := range output.Snapshot.Lists {
			snap.Lists = append(snap.Lists, listItem{
				ID:       l.ID,
				Title:    l.Title,
				BoardID:  l.BoardID,
				Position: l.Position,
			})
		}
		for _, card := range output.Snapshot.Cards {
			snap.Cards = append(snap.Cards, newCardItem(card))
		}
		resp.Snapshot = &snap
	}
	return resp
}

// ---- ListBoards ----

type boardItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type listBoardsResp struct {
	Boards []boardItem `json:"boards"`
}

func (h *handler) newListBoardsResp(output importer.ListBoardsOutput) listBoardsResp {
	items := make([]boardItem, 0, len(output.Boards))
	for _, b := range output.Boards {
		item := boardItem{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
		}
		if !b.CreatedAt.IsZero() {
			item.CreatedAt = b.CreatedAt.Format(response.DateTimeFormat)
		}
		items = append(items, item)
	}
	return listBoardsResp{Boards: items}
}
