package repository

import "time"

// CreateCardOptions describes a card to create in the board store.
type CreateCardOptions struct {
	Title       string
	Description string
	ListID      string
	BoardID     string
	Position    int
	Priority    string
	Labels      []string
	DueDate     *time.Time
}
