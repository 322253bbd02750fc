package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoToken      = errors.New("no access token, run login first")
	// ErrRejected wraps game-rule refusals such as cooldown or quota.
	ErrRejected = errors.New("rejected")
)
