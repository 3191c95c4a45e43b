package scoring

import "time"

// Point values for a group pick measured against the resolved seed order.
const (
	PointsExactSeeds   = 3 // both slots correct, in order
	PointsSwappedSeeds = 2 // both teams correct, order reversed
	PointsOneSeed      = 1 // exactly one predicted team among the seeds
)

// Point values for a correctly predicted knockout winner, by round lateness.
const (
	PointsEarlyRound = 1
	PointsMidRound   = 2
	PointsLateRound  = 4
)

// Cutoffs are the two calendar boundaries that split the knockout bracket
// into its three reward bands. They are configuration, never derived.
type Cutoffs struct {
	First  time.Time
	Second time.Time
}

// InclusionPolicy names the rule for which users appear on the leaderboard.
// The historical behavior dropped anyone without a complete set of group
// picks; that is kept as an explicit policy rather than a truthiness
// accident, with IncludeAllUsers as the alternative.
type InclusionPolicy int

const (
	RequireCompleteGroupPicks InclusionPolicy = iota
	IncludeAllUsers
)

// Engine scores picks against results. It is pure computation over the
// collections handed to it: no I/O, no ambient state, and identical outputs
// for identical inputs.
type Engine struct {
	cutoffs Cutoffs
	policy  InclusionPolicy
}

func NewEngine(cutoffs Cutoffs, policy InclusionPolicy) *Engine {
	return &Engine{cutoffs: cutoffs, policy: policy}
}

func (e *Engine) Policy() InclusionPolicy {
	return e.policy
}
