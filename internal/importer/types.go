package importer

import "boardimport/internal/model"

// ExtractInput is the input for task extraction.
type ExtractInput struct {
	Text string // Free-form text to extract tasks from
}

// ExtractOutput is the ordered candidate list, returned verbatim from the
// extraction service. May be empty.
type ExtractOutput struct {
	Candidates []model.TaskCandidate
}

// ImportInput is the input for the import operation.
type ImportInput struct {
	BoardID    string
	Candidates []model.TaskCandidate
}

// ImportOutput is the result of an import operation. On partial failure it is
// returned alongside the error and CreatedCards holds what was persisted
// before the failure.
type ImportOutput struct {
	BatchID      string
	BoardID      string
	ListID       string
	CreatedCards []model.Card
	Snapshot     *BoardSnapshot // refetched board state, set on full success
}

// BoardSnapshot is the board state refetched after a successful import.
type BoardSnapshot struct {
	Lists []model.List
	Cards []model.Card
}

// ListBoardsOutput is the result of board listing.
type ListBoardsOutput struct {
	Boards []model.Board
}
