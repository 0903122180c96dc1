package boardapi

import (
	"context"
	"time"

	"boardimport/internal/importer/repository"
	"boardimport/internal/model"
	pkgLog "boardimport/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new board store repository.
func New(client *Client, l pkgLog.Logger) repository.BoardRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListBoards(ctx context.Context, sc model.Scope) ([]model.Board, error) {
	boards, err := r.client.ListBoards(ctx, sc.Token)
	if err != nil {
		r.l.Errorf(ctx, "board repository: failed to list boards: %v", err)
		return nil, err
	}

	result := make([]model.Board, 0, len(boards))
	for _, b := range boards {
		result = append(result, boardToModel(&b))
	}
	return result, nil
}

func (r *implRepository) ListsForBoard(ctx context.Context, sc model.Scope, boardID string) ([]model.List, error) {
	lists, err := r.client.ListLists(ctx, sc.Token, boardID)
	if err != nil {
		r.l.Errorf(ctx, "board repository: failed to list lists for board %s: %v", boardID, err)
		return nil, err
	}

	// Response order is preserved: the first-list tie-break relies on it.
	result := make([]model.List, 0, len(lists))
	for _, l := range lists {
		result = append(result, model.List{
			ID:       l.ID,
			BoardID:  l.BoardID,
			Title:    l.Title,
			Position: l.Position,
		})
	}
	return result, nil
}

func (r *implRepository) CardsForBoard(ctx context.Context, sc model.Scope, boardID string) ([]model.Card, error) {
	cards, err := r.client.ListCards(ctx, sc.Token, boardID)
	if err != nil {
		r.l.Errorf(ctx, "board repository: failed to list cards for board %s: %v", boardID, err)
		return nil, err
	}

	result := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		result = append(result, cardToModel(&c))
	}
	return result, nil
}

func (r *implRepository) CreateCard(ctx context.Context, sc model.Scope, opt repository.CreateCardOptions) (model.Card, error) {
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	req := CreateCardRequest{
		Title:       opt.Title,
		Description: opt.Description,
		ListID:      opt.ListID,
		BoardID:     opt.BoardID,
		Position:    opt.Position,
		Priority:    priority,
		Labels:      opt.Labels,
	}
	if opt.DueDate != nil {
		req.DueDate = opt.DueDate.Format(time.RFC3339)
	}

	card, err := r.client.CreateCard(ctx, sc.Token, req)
	if err != nil {
		r.l.Errorf(ctx, "board repository: failed to create card %q: %v", opt.Title, err)
		return model.Card{}, err
	}

	return cardToModel(card), nil
}

// boardToModel converts a board store API board to the internal model.
func boardToModel(b *Board) model.Board {
	return model.Board{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		OwnerID:     b.OwnerID,
		Members:     b.Members,
		CreatedAt:   parseAPITime(b.CreatedAt),
		UpdatedAt:   parseAPITime(b.UpdatedAt),
	}
}

// cardToModel converts a board store API card to the internal model.
func cardToModel(c *Card) model.Card {
	card := model.Card{
		ID:          c.ID,
		ListID:      c.ListID,
		BoardID:     c.BoardID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		Priority:    c.Priority,
		Labels:      c.Labels,
		CreatedAt:   parseAPITime(c.CreatedAt),
		UpdatedAt:   parseAPITime(c.UpdatedAt),
	}
	if c.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, c.DueDate); err == nil {
			card.DueDate = &due
		}
	}
	return card
}

// parseAPITime parses an RFC3339 timestamp, returning the zero time when the
// field is missing or malformed.
func parseAPITime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
