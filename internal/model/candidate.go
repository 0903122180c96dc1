package model

import "time"

// Card priority levels, matching the board store's vocabulary.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// TaskCandidate is an unpersisted, AI-extracted task awaiting user
// confirmation and board assignment. Immutable once produced.
type TaskCandidate struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// EffectivePriority returns the candidate priority, defaulting to medium for
// empty or unknown values.
func (t TaskCandidate) EffectivePriority() string {
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return t.Priority
	default:
		return PriorityMedium
	}
}
