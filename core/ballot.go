package core

// Ballot is an ordered list of candidate preferences with a mutable
// current cursor and an integer weight. weight > 1 encodes multiple
// identical ballots, as used by grouped ticket votes under the 2013
// rules. Mungers may rewrite Prefs before the ballot is added to the
// vote map; the vote map itself only moves the cursor.
//
// Invariant: while the ballot is live, current < len(Prefs) and
// Prefs[current] names the candidate it currently counts for. The
// cursor is advanced by the vote map, never by the ballot itself.
type Ballot struct {
	Prefs   []CandidateID
	current int
	Weight  Int
}

// NewBallot creates a live ballot with the given preference order and
// weight 1.
func NewBallot(prefs []CandidateID) *Ballot {
	return NewWeightedBallot(prefs, NewInt(1))
}

// NewWeightedBallot creates a live ballot with an explicit weight.
func NewWeightedBallot(prefs []CandidateID, weight Int) *Ballot {
	return &Ballot{Prefs: prefs, current: 0, Weight: weight}
}

// Current returns the index into Prefs this ballot currently counts
// for.
func (b *Ballot) Current() int {
	return b.current
}

// CurrentCandidate returns the candidate this ballot currently counts
// for.
func (b *Ballot) CurrentCandidate() CandidateID {
	return b.Prefs[b.current]
}

// Advance moves the cursor to index i. Only the vote map calls this.
func (b *Ballot) Advance(i int) {
	b.current = i
}

// IsExhausted reports whether the cursor has run off the end of the
// preference list. It does not consult which candidates are still
// continuing: a ballot whose remaining preferences are all eliminated
// still reports false. VoteMap.FindNextValidPreference makes that check.
func (b *Ballot) IsExhausted() bool {
	return b.current >= len(b.Prefs)
}
