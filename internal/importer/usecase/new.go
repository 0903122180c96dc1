package usecase

import (
	"boardimport/internal/importer/repository"
	"boardimport/pkg/gcalendar"
	"boardimport/pkg/gemini"
	pkgLog "boardimport/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        gemini.IGemini
	calendar   gcalendar.ICalendar // optional, nil disables event scheduling
	repo       repository.BoardRepository
	calendarID string
	timezone   string
}

// New creates a new importer UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	calendar gcalendar.ICalendar,
	repo repository.BoardRepository,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		repo:       repo,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
