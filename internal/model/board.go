package model

import "time"

// Board is the top-level organizational unit: a named collection of lists.
// Boards are owned by the external board store and read-only here.
type Board struct {
	ID          string
	Title       string
	Description string
	OwnerID     string
	Members     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// List is an ordered column of cards within a board. Position defines display
// order within the board.
type List struct {
	ID       string
	BoardID  string
	Title    string
	Position int
}

// Card is a single work item within a list. Position defines order within the
// list; positions are assigned client-side from the pre-import card count.
type Card struct {
	ID          string
	ListID      string
	BoardID     string
	Title       string
	Description string
	Position    int
	Priority    string
	Labels      []string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
