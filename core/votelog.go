package core

// VoteLog is a candidate's ordered history of tallies, one entry per
// completed count round in which the candidate was still continuing.
// Comparison is lexicographic on the entire sequence, and is the
// historical tie-break order used when excluding a candidate.
type VoteLog struct {
	log []Int
}

// NewVoteLog returns an empty vote history.
func NewVoteLog() *VoteLog {
	return &VoteLog{}
}

// UpdateVote records a delta at round idx.
//
//   - If the log already has an entry at idx, delta is added to it.
//   - If idx is exactly the next unused slot, a new entry is appended
//     holding latest+delta (or just delta, if the log is still empty).
//   - If idx skips ahead of the next unused slot, the log is first
//     extended by duplicating its last value up to idx-1, and then the
//     new entry is appended. This lets a candidate who received no
//     increment in some round remain comparable to one who did: their
//     recorded tally simply repeats.
func (v *VoteLog) UpdateVote(idx int, delta Int) {
	switch {
	case idx < len(v.log):
		v.log[idx] = v.log[idx].Add(delta)
	case idx == len(v.log):
		latest := NewInt(0)
		if len(v.log) > 0 {
			latest = v.log[len(v.log)-1]
		}
		v.log = append(v.log, latest.Add(delta))
	default:
		latest := NewInt(0)
		if len(v.log) > 0 {
			latest = v.log[len(v.log)-1]
		}
		for len(v.log) < idx {
			v.log = append(v.log, latest)
		}
		v.log = append(v.log, latest.Add(delta))
	}
}

// Latest returns the most recent tally, or zero if the log is empty.
func (v *VoteLog) Latest() Int {
	if len(v.log) == 0 {
		return NewInt(0)
	}
	return v.log[len(v.log)-1]
}

// Len returns the number of rounds recorded.
func (v *VoteLog) Len() int {
	return len(v.log)
}

// At returns the tally recorded at round idx.
func (v *VoteLog) At(idx int) Int {
	return v.log[idx]
}

// Compare returns -1, 0 or +1 as v is lexicographically less than,
// equal to, or greater than other. A shorter log that is a strict
// prefix of a longer one compares as equal through the shared prefix
// and then continues on length, matching the spec's "longer series read
// as equal prefix then continues" rule.
func (v *VoteLog) Compare(other *VoteLog) int {
	n := len(v.log)
	if len(other.log) < n {
		n = len(other.log)
	}
	for i := 0; i < n; i++ {
		if c := v.log[i].Cmp(other.log[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(v.log) < len(other.log):
		return -1
	case len(v.log) > len(other.log):
		return 1
	default:
		return 0
	}
}
