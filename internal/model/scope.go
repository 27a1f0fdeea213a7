package model

// Scope carries per-conversation user identity through the call chain.
type Scope struct {
	UserID   string
	Username string
}
