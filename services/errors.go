package services

import "errors"

// Errors shared across services and mapped to HTTP statuses by the handlers.
var (
	// Not-found family
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")

	// Business-rule failures
	ErrValidationFailed = errors.New("validation failed")
	// ErrPlayerAlreadyDrafted reports the losing side of a draft race or a
	// straight re-draft attempt. Deliberately distinct from ErrPlayerNotFound
	// so clients can tell "already taken" from "bad id".
	ErrPlayerAlreadyDrafted = errors.New("player is not available for draft")

	// ErrSimulationDisabled means the demo score randomizer is switched off.
	ErrSimulationDisabled = errors.New("score simulation is disabled")
)
