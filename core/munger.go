package core

// Munger is an external ballot transform applied after parsing and
// before ingestion into the vote map. The core accepts an arbitrary
// ordered list of them as a transform hook; order of application
// matters, since each munger sees the ballot after prior ones have run.
type Munger interface {
	Munge(ballot *Ballot, groups []Group, candidates CandidateMap)
}
