package importer

import (
	"context"

	"boardimport/internal/model"
)

// UseCase defines the business logic interface for the inbox-to-board import
// domain.
type UseCase interface {
	// Extract sends free-form text to the extraction service and returns the
	// ordered candidate list verbatim.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Import persists a confirmed candidate batch as cards on the target
	// board's first list, sequentially and in order.
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)

	// ListBoards returns the boards the session user can access, for target
	// selection.
	ListBoards(ctx context.Context, sc model.Scope) (ListBoardsOutput, error)
}
