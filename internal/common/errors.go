// Package common defines shared constants and sentinel errors used across
// the GeneralStore client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrAuthRequired means the action needs an active session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionExpired means the stored credential was rejected by the
	// server during session resume.
	ErrSessionExpired = errors.New("session expired")

	// ErrValidation marks client-side validation failures (bad price,
	// missing field, not enough offer images). Wrap it with context:
	//
	//	fmt.Errorf("%w: counter amount must be positive", common.ErrValidation)
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a referenced entity is absent from a
	// local store (not to be confused with a remote 404, which surfaces
	// as an api error).
	ErrNotFound = errors.New("not found")
)
