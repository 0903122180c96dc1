package repository

import (
	"context"

	"boardimport/internal/model"
)

// BoardRepository is the interface for board store data access. Every call
// forwards the session's bearer credential.
type BoardRepository interface {
	ListBoards(ctx context.Context, sc model.Scope) ([]model.Board, error)
	ListsForBoard(ctx context.Context, sc model.Scope, boardID string) ([]model.List, error)
	CardsForBoard(ctx context.Context, sc model.Scope, boardID string) ([]model.Card, error)
	CreateCard(ctx context.Context, sc model.Scope, opt CreateCardOptions) (model.Card, error)
}
