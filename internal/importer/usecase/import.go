package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"boardimport/internal/importer"
	"boardimport/internal/importer/repository"
	"boardimport/internal/model"
	"boardimport/pkg/gcalendar"
)

// Import converts a confirmed candidate batch into persisted cards on the
// target board, in candidate order.
//
// Writes are issued strictly one at a time: positions are computed client-side
// from a pre-import read, so concurrent creates could assign duplicates. The
// loop aborts at the first failed create; prior creations are not rolled back,
// and the partial output is returned alongside the error.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input importer.ImportInput) (importer.ImportOutput, error) {
	if len(input.Candidates) == 0 {
		return importer.ImportOutput{}, importer.ErrNoCandidates
	}
	if input.BoardID == "" {
		return importer.ImportOutput{}, importer.ErrNoBoardSelected
	}

	uc.l.Infof(ctx, "Import: user=%s board=%s candidates=%d", sc.UserID, input.BoardID, len(input.Candidates))

	lists, err := uc.repo.ListsForBoard(ctx, sc, input.BoardID)
	if err != nil {
		return importer.ImportOutput{}, fmt.Errorf("failed to resolve destination list: %w", err)
	}

	dest, ok := destinationList(lists)
	if !ok {
		return importer.ImportOutput{}, importer.ErrNoDestinationList
	}

	cards, err := uc.repo.CardsForBoard(ctx, sc, input.BoardID)
	if err != nil {
		return importer.ImportOutput{}, fmt.Errorf("failed to read destination cards: %w", err)
	}
	start := countCardsInList(cards, dest.ID)

	out := importer.ImportOutput{
		BatchID: uuid.NewString(),
		BoardID: input.BoardID,
		ListID:  dest.ID,
	}

	for i, cand := range input.Candidates {
		created, createErr := uc.repo.CreateCard(ctx, sc, repository.CreateCardOptions{
			Title:       cand.Title,
			Description: cand.Description,
			ListID:      dest.ID,
			BoardID:     input.BoardID,
			Position:    start + i,
			Priority:    cand.EffectivePriority(),
			DueDate:     cand.DueDate,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "Import: batch %s aborted at card %d/%d: %v", out.BatchID, i+1, len(input.Candidates), createErr)
			return out, fmt.Errorf("import incomplete: %d of %d cards created: %w", len(out.CreatedCards), len(input.Candidates), createErr)
		}

		out.CreatedCards = append(out.CreatedCards, created)
		uc.l.Infof(ctx, "Import: created card %q at position %d", created.Title, created.Position)

		uc.tryCreateCalendarEvent(ctx, cand, created)
	}

	// Refetch board state so callers render server truth, not local merges.
	snapshot, snapErr := uc.refetchBoard(ctx, sc, input.BoardID)
	if snapErr != nil {
		uc.l.Warnf(ctx, "Import: refetch after import failed (non-fatal): %v", snapErr)
	} else {
		out.Snapshot = snapshot
	}

	return out, nil
}

// refetchBoard reloads the lists and cards of a board after a mutation.
func (uc *implUseCase) refetchBoard(ctx context.Context, sc model.Scope, boardID string) (*importer.BoardSnapshot, error) {
	lists, err := uc.repo.ListsForBoard(ctx, sc, boardID)
	if err != nil {
		return nil, err
	}
	cards, err := uc.repo.CardsForBoard(ctx, sc, boardID)
	if err != nil {
		return nil, err
	}
	return &importer.BoardSnapshot{Lists: lists, Cards: cards}, nil
}

// tryCreateCalendarEvent schedules a calendar event for a card with a due
// date. Failure is non-fatal: the card is already persisted.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, cand model.TaskCandidate, card model.Card) {
	if uc.calendar == nil || cand.DueDate == nil {
		return
	}

	startTime := *cand.DueDate
	endTime := startTime.Add(time.Hour)

	description := cand.Description
	if card.ID != "" {
		description = strings.TrimSpace(description + "\n\nCard: " + card.ID)
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     cand.Title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Import: calendar event creation failed for %q (non-fatal): %v", cand.Title, err)
	}
}
