// Package common defines shared constants and sentinel errors used across
// the siege server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrForbidden       = errors.New("admin token required")
	ErrVersionConflict = errors.New("version conflict")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors.
	ErrNoTarget           = errors.New("no target selected")
	ErrNoMoveSelected     = errors.New("no move or action card selected")
	ErrNoApplicableEffect = errors.New("selection has no applicable effect")
	ErrSelfAttack         = errors.New("cannot attack own vault")
	ErrUnknownMove        = errors.New("unknown move")
	ErrUnknownCard        = errors.New("unknown action card")
	ErrInvalidUpgrade     = errors.New("invalid upgrade kind")
	ErrUnknownArtifact    = errors.New("unknown artifact")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInsufficientFunds  = errors.New("insufficient funds")

	// State-precondition errors.
	ErrVaultOnCooldown  = errors.New("vault on cooldown")
	ErrQuotaExhausted   = errors.New("no moves remaining today")
	ErrMoveLocked       = errors.New("move not unlocked")
	ErrMaxMastery       = errors.New("move already at max mastery")
	ErrCardUnavailable  = errors.New("action card not unlocked or out of uses")
	ErrNothingToRestore = errors.New("no spent moves to restore")
)

// CooldownError reports a target vault that is protected after depletion.
// It matches ErrVaultOnCooldown with errors.Is.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrVaultOnCooldown, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error {
	return ErrVaultOnCooldown
}
