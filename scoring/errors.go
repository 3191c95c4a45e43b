package scoring

import "errors"

// Data-integrity errors. Incomplete state (group not fully played, knockout
// match without a result) is not an error; it is the undetermined result.
var (
	// More than one live pick found for the same (user, group) or
	// (user, knockout match) key. The storage layer enforces uniqueness,
	// so seeing this means the snapshot is corrupt; it is surfaced instead
	// of silently taking the first row.
	ErrDuplicatePick = errors.New("duplicate pick for the same group or fixture")

	ErrUnknownGroup         = errors.New("pick references an unknown group")
	ErrUnknownTeam          = errors.New("pick references a team outside the group")
	ErrUnknownKnockoutMatch = errors.New("pick references an unknown knockout match")
)
