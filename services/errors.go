package services

import "errors"

// Shared errors used across services and the HTTP mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrInvalidGoals         = errors.New("goals must be non-negative")
	ErrWinnerNotParticipant = errors.New("winner must be one of the match participants")
	ErrPickSeedsIdentical   = errors.New("first and second seed picks must differ")
	ErrPickTeamNotInGroup   = errors.New("picked team is not a member of the group")
	ErrMatchAlreadyPlayed   = errors.New("result for this match is already recorded")
	ErrUnsupportedCrestType = errors.New("crest image must be PNG, JPEG or SVG")

	// Conflicts
	ErrKnockoutPickExists = errors.New("a pick for this knockout fixture was already submitted")

	// Entity-specific not-found errors (more context than ErrNotFound)
	ErrUserNotFound          = errors.New("user not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrGroupNotFound         = errors.New("group not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrKnockoutMatchNotFound = errors.New("knockout match not found")
	ErrPickNotFound          = errors.New("pick not found")

	// Stored pick data failed an integrity check during scoring. This is a
	// should-not-happen state; the scorer refuses to guess instead of
	// silently taking the first matching row.
	ErrPickDataCorrupt = errors.New("stored picks failed an integrity check")
)
