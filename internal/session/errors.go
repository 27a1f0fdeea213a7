package session

import "errors"

var (
	ErrSessionNotFound = errors.New("interview session not found")
	ErrSessionExpired  = errors.New("interview session expired")
)
