package usecase

import (
	"context"
	"fmt"

	"boardimport/internal/importer"
	"boardimport/internal/model"
)

// ListBoards returns the boards the session user can access.
func (uc *implUseCase) ListBoards(ctx context.Context, sc model.Scope) (importer.ListBoardsOutput, error) {
	boards, err := uc.repo.ListBoards(ctx, sc)
	if err != nil {
		return importer.ListBoardsOutput{}, fmt.Errorf("failed to list boards: %w", err)
	}
	return importer.ListBoardsOutput{Boards: boards}, nil
}
