package core

import (
	"sort"

	"github.com/senatestv/count-service/tallyerr"
	"github.com/senatestv/count-service/tallylog"
)

// transferBucket holds the ballots that arrived at a candidate at a
// single transfer value.
type transferBucket struct {
	tv      Frac
	ballots []*Ballot
}

// TransferMap is a per-candidate mapping from transfer value to the
// ballots that arrived at that value. Segmented exclusion relies on
// being able to iterate buckets in descending transfer-value order, so
// that the largest-transfer-value segment is redistributed first.
type TransferMap struct {
	buckets []transferBucket
	index   map[string]int // Frac.Key() -> index into buckets
}

func newTransferMap() *TransferMap {
	return &TransferMap{index: make(map[string]int)}
}

// add appends a single ballot to the bucket for tv, creating the bucket
// if needed.
func (m *TransferMap) add(tv Frac, b *Ballot) {
	if i, ok := m.index[tv.Key()]; ok {
		m.buckets[i].ballots = append(m.buckets[i].ballots, b)
		return
	}
	m.index[tv.Key()] = len(m.buckets)
	m.buckets = append(m.buckets, transferBucket{tv: tv, ballots: []*Ballot{b}})
}

// addAll appends every ballot in bs to the bucket for tv.
func (m *TransferMap) addAll(tv Frac, bs []*Ballot) {
	for _, b := range bs {
		m.add(tv, b)
	}
}

// descending returns the buckets sorted by transfer value, largest
// first.
func (m *TransferMap) descending() []transferBucket {
	out := make([]transferBucket, len(m.buckets))
	copy(out, m.buckets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].tv.Cmp(out[j].tv) > 0
	})
	return out
}

// all flattens every bucket into one slice, discarding transfer-value
// boundaries; used when electing a candidate at quota, where all of
// their ballots are re-bucketed at a single new transfer value.
func (m *TransferMap) all() []*Ballot {
	var out []*Ballot
	for _, bucket := range m.buckets {
		out = append(out, bucket.ballots...)
	}
	return out
}

// totalWeight sums the weight (not the count) of every ballot held.
func (m *TransferMap) totalWeight() Int {
	total := NewInt(0)
	for _, bucket := range m.buckets {
		for _, b := range bucket.ballots {
			total = total.Add(b.Weight)
		}
	}
	return total
}

func (m *TransferMap) empty() bool {
	for _, bucket := range m.buckets {
		if len(bucket.ballots) > 0 {
			return false
		}
	}
	return true
}

// VoteInfo is the per-candidate state held by a VoteMap: their vote
// history, the ballots currently counting toward them, and whether
// they have been removed from the count. Once eliminated, Ballots is
// emptied and Votes is frozen at its value at elimination.
type VoteInfo struct {
	ID         CandidateID
	Votes      *VoteLog
	ballots    *TransferMap
	Eliminated bool
}

// PreferenceTransfer is a pending redistribution task: the ballots
// leaving From, to be applied to their next continuing preference at
// the given transfer value.
type PreferenceTransfer struct {
	From          CandidateID
	TransferValue Frac
	Ballots       []*Ballot
}

// CandidateElected is produced when a candidate reaches quota (or is
// swept up by elect-remaining / the majority short-circuit).
type CandidateElected struct {
	ID              CandidateID
	VotesAtElection Int
	Transfers       []PreferenceTransfer
}

// CandidateExcluded is produced when a candidate is knocked out of the
// count; their ballots are redistributed in one PreferenceTransfer per
// distinct transfer value, largest first.
type CandidateExcluded struct {
	ID        CandidateID
	Transfers []PreferenceTransfer
}

// VoteMap owns the per-candidate tally and ballot buckets for the
// duration of a count, and exposes the elect/exclude/transfer
// primitives the counting engine drives.
type VoteMap struct {
	candidates map[CandidateID]*VoteInfo
	order      []CandidateID // insertion order, for deterministic iteration
}

// NewVoteMap constructs a VoteInfo per candidate id with zero votes and
// an empty bucket seeded with the transfer value 1. A repeated id is a
// fatal configuration error.
func NewVoteMap(candidateIDs []CandidateID) (*VoteMap, error) {
	vm := &VoteMap{candidates: make(map[CandidateID]*VoteInfo, len(candidateIDs))}
	one := NewFrac(1, 1)
	for _, id := range candidateIDs {
		if _, exists := vm.candidates[id]; exists {
			return nil, tallyerr.MessageErrorf(tallyerr.ErrInternal, "candidate id %d appears more than once", id)
		}
		tm := newTransferMap()
		tm.index[one.Key()] = 0
		tm.buckets = append(tm.buckets, transferBucket{tv: one})
		vm.candidates[id] = &VoteInfo{ID: id, Votes: NewVoteLog(), ballots: tm}
		vm.order = append(vm.order, id)
	}
	return vm, nil
}

// Add allocates ballot to the candidate it currently counts for: its
// tally is incremented by the ballot's weight at round roundIdx, and
// the ballot is appended to that candidate's transfer-value-1 bucket.
func (m *VoteMap) Add(roundIdx int, ballot *Ballot) {
	info := m.candidates[ballot.CurrentCandidate()]
	info.Votes.UpdateVote(roundIdx, ballot.Weight)
	info.ballots.add(NewFrac(1, 1), ballot)
}

// Has reports whether id names a candidate known to this vote map.
func (m *VoteMap) Has(id CandidateID) bool {
	_, ok := m.candidates[id]
	return ok
}

// FindNextValidPreference scans ballot.Prefs from its current cursor
// for the first candidate that is not eliminated, returning its index.
// ok is false when no continuing candidate remains.
func (m *VoteMap) FindNextValidPreference(ballot *Ballot) (idx int, ok bool) {
	for i := ballot.Current(); i < len(ballot.Prefs); i++ {
		if info, exists := m.candidates[ballot.Prefs[i]]; exists && !info.Eliminated {
			return i, true
		}
	}
	return 0, false
}

// continuing returns the ids of candidates neither elected nor
// excluded, in a fixed deterministic order.
func (m *VoteMap) continuing() []CandidateID {
	var out []CandidateID
	for _, id := range m.order {
		if !m.candidates[id].Eliminated {
			out = append(out, id)
		}
	}
	return out
}

// NumCandidatesRemaining returns the number of continuing candidates.
func (m *VoteMap) NumCandidatesRemaining() int {
	return len(m.continuing())
}

// ContinuingIDs returns the ids of every continuing candidate, in a
// fixed deterministic order.
func (m *VoteMap) ContinuingIDs() []CandidateID {
	return append([]CandidateID(nil), m.continuing()...)
}

// GetTally returns the latest tally recorded for id.
func (m *VoteMap) GetTally(id CandidateID) Int {
	return m.candidates[id].Votes.Latest()
}

// EliminateOutright removes id from the count without generating any
// PreferenceTransfer, freezing its tally at its latest value. Used by
// the engine's terminal short-circuits, where the count ends before any
// further redistribution of the candidate's ballots could matter.
func (m *VoteMap) EliminateOutright(id CandidateID) Int {
	info := m.candidates[id]
	votes := info.Votes.Latest()
	info.Eliminated = true
	info.ballots = newTransferMap()
	return votes
}

// GetCandidatesWithQuota returns continuing candidates whose latest
// tally meets or exceeds quota, in strictly descending tally order.
// Ties are broken by the candidate with the lexicographically greatest
// vote history (the mirror image of the last-candidate tie-break), and
// finally, deterministically, by ascending candidate id — a quota tie
// never needs operator input, unlike a last-place tie, because electing
// either candidate first changes nothing about who is elected, only the
// order they are reported in.
func (m *VoteMap) GetCandidatesWithQuota(quota Int) []CandidateID {
	var out []CandidateID
	for _, id := range m.continuing() {
		if m.candidates[id].Votes.Latest().GreaterOrEqual(quota) {
			out = append(out, id)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := m.candidates[out[i]], m.candidates[out[j]]
		if c := a.Votes.Latest().Cmp(b.Votes.Latest()); c != 0 {
			return c > 0
		}
		if c := a.Votes.Compare(b.Votes); c != 0 {
			return c > 0
		}
		return a.ID < b.ID
	})
	return out
}

// GetLastCandidate returns the continuing candidate with the smallest
// latest tally. If more than one candidate is tied even after breaking
// ties by vote history, id is the zero value, ok is false, and tied
// holds every candidate in the unresolved tie, for the caller to put to
// an external tie-break resolver.
func (m *VoteMap) GetLastCandidate() (id CandidateID, ok bool, tied []CandidateID) {
	cont := m.continuing()
	if len(cont) == 0 {
		return 0, false, nil
	}

	sort.SliceStable(cont, func(i, j int) bool {
		a, b := m.candidates[cont[i]], m.candidates[cont[j]]
		if c := a.Votes.Latest().Cmp(b.Votes.Latest()); c != 0 {
			return c < 0
		}
		return a.Votes.Compare(b.Votes) < 0
	})

	best := m.candidates[cont[0]]
	var group []CandidateID
	for _, cid := range cont {
		c := m.candidates[cid]
		if c.Votes.Latest().Equal(best.Votes.Latest()) && c.Votes.Compare(best.Votes) == 0 {
			group = append(group, cid)
		}
	}

	if len(group) == 1 {
		return group[0], true, nil
	}
	return 0, false, group
}

// ElectCandidatesWithQuota marks every candidate at or above quota as
// eliminated, drains each of their buckets into a single flat list
// (discarding the old transfer-value boundaries), and computes the new
// transfer value (votes-quota)/totalBallotWeight for redistributing the
// surplus.
func (m *VoteMap) ElectCandidatesWithQuota(quota Int) []CandidateElected {
	ids := m.GetCandidatesWithQuota(quota)
	out := make([]CandidateElected, 0, len(ids))
	for _, id := range ids {
		info := m.candidates[id]
		votes := info.Votes.Latest()
		ballots := info.ballots.all()
		totalWeight := info.ballots.totalWeight()

		info.Eliminated = true
		info.ballots = newTransferMap()

		elected := CandidateElected{ID: id, VotesAtElection: votes}
		if totalWeight.Sign() > 0 {
			tv := QuotientFrac(votes.Sub(quota), totalWeight)
			elected.Transfers = []PreferenceTransfer{{From: id, TransferValue: tv, Ballots: ballots}}
		}
		out = append(out, elected)
	}
	return out
}

// ExcludeCandidateByID marks id eliminated and emits one
// PreferenceTransfer per distinct transfer value currently held in
// their bucket, in descending order (largest transfer value first).
func (m *VoteMap) ExcludeCandidateByID(id CandidateID) CandidateExcluded {
	info := m.candidates[id]
	buckets := info.ballots.descending()
	info.Eliminated = true
	info.ballots = newTransferMap()

	var transfers []PreferenceTransfer
	for _, bucket := range buckets {
		if len(bucket.ballots) == 0 {
			continue
		}
		transfers = append(transfers, PreferenceTransfer{From: id, TransferValue: bucket.tv, Ballots: bucket.ballots})
	}
	return CandidateExcluded{ID: id, Transfers: transfers}
}

// TransferPreferences applies one pending transfer: every ballot's
// cursor is advanced to its next continuing preference (ballots with
// none are exhausted and recorded against round roundIdx at the
// transfer's value), survivors are grouped by their new current
// candidate, and each group's weighted value floor(tv * sum(weight)) is
// added to that candidate's tally at roundIdx. Ballots are rebucketed
// under the incoming transfer value, never multiplied by any prior
// bucket's value: the engine distributes one segment at a time.
func (m *VoteMap) TransferPreferences(roundIdx int, transfer PreferenceTransfer, stats *Stats) {
	groups := make(map[CandidateID][]*Ballot)
	var order []CandidateID

	for _, ballot := range transfer.Ballots {
		if i, ok := m.FindNextValidPreference(ballot); ok {
			ballot.Advance(i)
			c := ballot.CurrentCandidate()
			if _, seen := groups[c]; !seen {
				order = append(order, c)
			}
			groups[c] = append(groups[c], ballot)
			continue
		}
		stats.RecordExhaustedVote(roundIdx, transfer.TransferValue.MulInt(ballot.Weight))
	}

	for _, cid := range order {
		ballots := groups[cid]
		weightSum := NewInt(0)
		for _, b := range ballots {
			weightSum = weightSum.Add(b.Weight)
		}
		increment := transfer.TransferValue.MulInt(weightSum).Floor()

		info := m.candidates[cid]
		info.Votes.UpdateVote(roundIdx, increment)
		info.ballots.addAll(transfer.TransferValue, ballots)
	}
}

// ElectRemaining drains every continuing candidate, each becoming a
// CandidateElected with no further transfers.
func (m *VoteMap) ElectRemaining() []CandidateElected {
	var out []CandidateElected
	for _, id := range m.continuing() {
		info := m.candidates[id]
		out = append(out, CandidateElected{ID: id, VotesAtElection: info.Votes.Latest()})
		info.Eliminated = true
		info.ballots = newTransferMap()
	}
	return out
}

// PrintSummary logs the current tally of every continuing candidate at
// trace level, in insertion order.
func (m *VoteMap) PrintSummary() {
	for _, id := range m.order {
		info := m.candidates[id]
		if info.Eliminated {
			continue
		}
		tallylog.Tracef("candidate %d: %s", id, info.Votes.Latest())
	}
}
