package core

import (
	"fmt"
	"iter"

	"github.com/senatestv/count-service/tallyerr"
	"github.com/senatestv/count-service/tallylog"
)

// BallotStream yields the rows of a preferences file already parsed
// (and munged) into either a legal ballot or a classified error. The
// engine drains it exactly once.
type BallotStream = iter.Seq[ParsedRow]

// SenateSeat is one entry of a completed Senate result: an elected
// candidate and the tally they held when elected.
type SenateSeat struct {
	ID    CandidateID
	Tally Int
}

// Senate is the result of a completed count: the ordered list of
// elected senators, whether the result ended in an unresolved majority
// tie (only possible with the two-candidate short-circuit enabled), and
// the statistics gathered along the way.
type Senate struct {
	Elected []SenateSeat
	Tied    bool
	Stats   *Stats
}

// RunConfig is the input to Run: the candidate universe, any
// pre-count disqualifications, the ballot stream, and the knobs that
// govern how the count proceeds.
type RunConfig struct {
	Candidates   CandidateMap
	Groups       []Group
	Disqualified []CandidateID
	Seats        int
	Ballots      BallotStream
	Mungers      []Munger
	Resolver     TieBreakResolver

	// MajorityShortCircuit enables the 2013-rules two-candidate
	// majority short-circuit for the final seat. When false (2016
	// rules), the ordinary exclude/transfer loop decides the last seat.
	MajorityShortCircuit bool
}

// Run drives the full count-round state machine described for the
// counting engine: it drains the ballot stream, builds the vote map,
// computes quota, applies pre-count disqualifications, then repeatedly
// elects at quota and excludes the lowest continuing candidate until
// every seat is filled.
func Run(cfg RunConfig) (Senate, error) {
	stats := NewStats()
	candidateIDs := make([]CandidateID, 0, len(cfg.Candidates))
	for id := range cfg.Candidates {
		candidateIDs = append(candidateIDs, id)
	}

	vm, err := NewVoteMap(candidateIDs)
	if err != nil {
		return Senate{}, fmt.Errorf("building vote map: %w", err)
	}

	var ballots []*Ballot
	for row := range cfg.Ballots {
		if row.Err != nil {
			if ie, ok := row.Err.(InputError); ok {
				return Senate{}, ie
			}
			if be, ok := row.Err.(BallotError); ok {
				stats.RecordInvalidVote(be)
				continue
			}
			return Senate{}, fmt.Errorf("classifying ballot row: %w", row.Err)
		}
		if row.Ballot == nil {
			continue
		}
		ballot := row.Ballot
		for _, m := range cfg.Mungers {
			m.Munge(ballot, cfg.Groups, cfg.Candidates)
		}
		stats.RecordValidVote(ballot)
		ballots = append(ballots, ballot)
	}

	for _, b := range ballots {
		vm.Add(0, b)
	}

	quota := Quota(stats.NumValidVotes(), cfg.Seats)

	for _, id := range cfg.Disqualified {
		if !vm.Has(id) {
			return Senate{}, tallyerr.MessageErrorf(tallyerr.ErrInternal, "disqualified candidate %d not found", id)
		}
		excluded := vm.ExcludeCandidateByID(id)
		for _, transfer := range excluded.Transfers {
			vm.TransferPreferences(0, transfer, stats)
		}
	}

	result := make([]SenateSeat, 0, cfg.Seats)
	var queue []PreferenceTransfer

	// enqueueElected appends a batch of simultaneously-elected candidates.
	// The Droop quota only guarantees at most seats+1 candidates can reach
	// quota in the same count, and only when seats+1 divides the valid
	// vote total exactly. When a batch would overflow the remaining seats,
	// that boundary case has been reached. spec.md §8 sanctions an S+1,
	// tied result only "with the tied-short-circuit flag on"; the
	// two-candidate majority short-circuit is the only mechanism this
	// engine has for resolving an ambiguous last seat, so an overflow is
	// only seated-and-tied when MajorityShortCircuit is enabled. With the
	// flag off (2016 rules), the candidates in the batch are already
	// marked eliminated in the vote map by the time this runs, so there
	// is no continuing-candidate state to fall back to exclusion from:
	// the count is fatally ambiguous and aborts.
	enqueueElected := func(elected []CandidateElected) (overflow bool, err error) {
		if len(result)+len(elected) > cfg.Seats {
			if !cfg.MajorityShortCircuit {
				return false, tallyerr.MessageErrorf(tallyerr.ErrInternal,
					"%d candidates reached quota in the same round with only %d seat(s) remaining, and the two-candidate majority short-circuit is disabled",
					len(elected), cfg.Seats-len(result))
			}
			for _, e := range elected {
				result = append(result, SenateSeat{ID: e.ID, Tally: e.VotesAtElection})
			}
			return true, nil
		}
		for _, e := range elected {
			result = append(result, SenateSeat{ID: e.ID, Tally: e.VotesAtElection})
			queue = append(queue, e.Transfers...)
		}
		return false, nil
	}

	overflow, err := enqueueElected(vm.ElectCandidatesWithQuota(quota))
	if err != nil {
		return Senate{}, err
	}
	if overflow {
		return Senate{Elected: result, Tied: true, Stats: stats}, nil
	}

	for count := 2; len(result) < cfg.Seats; count++ {
		if len(queue) == 0 {
			positionsRemaining := cfg.Seats - len(result)
			remaining := vm.NumCandidatesRemaining()

			if remaining == positionsRemaining {
				// ElectRemaining drains exactly positionsRemaining
				// candidates, so this can never overflow.
				if _, err := enqueueElected(vm.ElectRemaining()); err != nil {
					return Senate{}, err
				}
				break
			}

			if cfg.MajorityShortCircuit && remaining == 2 && positionsRemaining == 1 {
				seat, tied, serr := electByMajority(vm)
				if serr != nil {
					return Senate{}, serr
				}
				if tied {
					for _, id := range vm.ContinuingIDs() {
						result = append(result, SenateSeat{ID: id, Tally: vm.EliminateOutright(id)})
					}
					return Senate{Elected: result, Tied: true, Stats: stats}, nil
				}
				result = append(result, seat)
				break
			}

			id, ok, tied := vm.GetLastCandidate()
			if !ok {
				if len(tied) == 0 {
					return Senate{}, tallyerr.MessageError(tallyerr.ErrInternal, "no continuing candidate to exclude")
				}
				if cfg.Resolver == nil {
					return Senate{}, tallyerr.MessageErrorf(tallyerr.ErrInternal, "unresolved tie among candidates %v and no tie-break resolver configured", tied)
				}
				chosen, resolved := cfg.Resolver.Resolve(tied, cfg.Candidates)
				if !resolved || !containsID(tied, chosen) {
					return Senate{}, tallyerr.MessageErrorf(tallyerr.ErrInternal, "tie-break resolver could not choose among candidates %v", tied)
				}
				id = chosen
			}

			excluded := vm.ExcludeCandidateByID(id)
			queue = append(queue, excluded.Transfers...)
		}

		if len(queue) == 0 {
			// The excluded candidate held no ballots, so there is no
			// transfer to pop. Move to the next round without
			// applying a transfer.
			continue
		}

		transfer := queue[0]
		queue = queue[1:]
		vm.TransferPreferences(count-1, transfer, stats)

		overflow, err := enqueueElected(vm.ElectCandidatesWithQuota(quota))
		if err != nil {
			return Senate{}, err
		}
		if overflow {
			return Senate{Elected: result, Tied: true, Stats: stats}, nil
		}
	}

	vm.PrintSummary()
	tallylog.Infof("count complete: %d senators elected", len(result))

	return Senate{Elected: result, Stats: stats}, nil
}

func containsID(ids []CandidateID, id CandidateID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// electByMajority implements the two-candidate majority short-circuit:
// of the two remaining candidates, the one with the larger tally is
// elected outright; an exact tie elects both and the caller marks the
// result tied.
func electByMajority(vm *VoteMap) (seat SenateSeat, tied bool, err error) {
	ids := vm.ContinuingIDs()
	if len(ids) != 2 {
		return SenateSeat{}, false, fmt.Errorf("majority short-circuit requires exactly two continuing candidates, got %d", len(ids))
	}
	a, b := ids[0], ids[1]
	ta, tb := vm.GetTally(a), vm.GetTally(b)

	switch ta.Cmp(tb) {
	case 0:
		return SenateSeat{}, true, nil
	case 1:
		return SenateSeat{ID: a, Tally: vm.EliminateOutright(a)}, false, nil
	default:
		return SenateSeat{ID: b, Tally: vm.EliminateOutright(b)}, false, nil
	}
}
