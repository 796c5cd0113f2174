package core

// TieBreakResolver breaks a last-candidate-for-exclusion tie that
// neither tally nor vote history could resolve. Implementations may
// prompt an operator, consult a fixed order, or anything else; the
// core makes no assumption about how the choice is made.
type TieBreakResolver interface {
	// Resolve is given the tied candidate ids and the full candidate
	// map (for displaying names), and returns the chosen id. ok is
	// false when no choice could be made, which the engine treats as
	// fatal.
	Resolve(tied []CandidateID, candidates CandidateMap) (id CandidateID, ok bool)
}
