package core

// ExhaustedRound records how many ballots exhausted during one count
// round, and the total transfer value they carried.
type ExhaustedRound struct {
	Ballots int
	Value   Frac
}

// Stats aggregates valid/invalid vote counts and per-round exhaustion.
type Stats struct {
	numValidVotes    Int
	invalidVotes     map[BallotErrorKind]int
	exhaustedByRound map[int]ExhaustedRound
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{
		numValidVotes:    NewInt(0),
		invalidVotes:     make(map[BallotErrorKind]int),
		exhaustedByRound: make(map[int]ExhaustedRound),
	}
}

// RecordValidVote adds a ballot's weight to the running valid-vote
// total.
func (s *Stats) RecordValidVote(b *Ballot) {
	s.numValidVotes = s.numValidVotes.Add(b.Weight)
}

// RecordInvalidVote increments the counter for err's class, collapsing
// size-variant errors of the same kind (e.g. InvalidMinAbove(6) and
// InvalidMinAbove(12)) into one bucket.
func (s *Stats) RecordInvalidVote(err BallotError) {
	s.invalidVotes[err.EraseDetail().Kind]++
}

// RecordExhaustedVote records that a ballot exhausted during round,
// carrying the given transfer value.
func (s *Stats) RecordExhaustedVote(round int, transferValue Frac) {
	entry := s.exhaustedByRound[round]
	entry.Ballots++
	entry.Value = entry.Value.Add(transferValue)
	s.exhaustedByRound[round] = entry
}

// NumValidVotes returns the total weight of all valid ballots recorded.
func (s *Stats) NumValidVotes() Int {
	return s.numValidVotes
}

// NumInvalidVotes returns the total count of invalid ballots recorded,
// across all error kinds.
func (s *Stats) NumInvalidVotes() int {
	total := 0
	for _, n := range s.invalidVotes {
		total += n
	}
	return total
}

// InvalidVotes returns a copy of the per-kind invalid ballot counts.
func (s *Stats) InvalidVotes() map[BallotErrorKind]int {
	out := make(map[BallotErrorKind]int, len(s.invalidVotes))
	for k, v := range s.invalidVotes {
		out[k] = v
	}
	return out
}

// ExhaustedVotes returns a copy of the per-round exhaustion series.
func (s *Stats) ExhaustedVotes() map[int]ExhaustedRound {
	out := make(map[int]ExhaustedRound, len(s.exhaustedByRound))
	for k, v := range s.exhaustedByRound {
		out[k] = v
	}
	return out
}
