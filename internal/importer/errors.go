package importer

import "errors"

// Domain-specific errors for the importer package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrNoCandidates      = errors.New("no task candidates to import")
	ErrNoBoardSelected   = errors.New("no target board selected")
	ErrNoDestinationList = errors.New("target board has no list to import into")
)
