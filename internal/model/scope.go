package model

// Scope is the per-request session context. It replaces ambient session
// storage: the auth middleware builds it from the verified bearer token and it
// is passed explicitly to every collaborator call.
type Scope struct {
	UserID string
	Token  string // raw bearer credential, forwarded to the board store
}
