// Package parser converts a raw AEC preferences string into a legal
// ballot or a classified error, following the repeat-cutoff / gap-cut
// rule and the above/below-the-line resolution table used by the
// Australian Senate count.
package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/senatestv/count-service/core"
)

// ChoiceConstraint governs how a ballot that parses legally on both the
// above-the-line and below-the-line halves is resolved.
type ChoiceConstraint int

const (
	Strict ChoiceConstraint = iota
	PreferAbove
	PreferBelow
)

// CountConstraintKind names which half and which bound a CountConstraint
// checks.
type CountConstraintKind int

const (
	MinAbove CountConstraintKind = iota
	MaxAbove
	MinBelow
	MaxBelow
)

// CountConstraint bounds the number of valid preferences on one half of
// the ballot.
type CountConstraint struct {
	Kind CountConstraintKind
	N    int
}

// Constraints is a ballot-validity policy: a choice rule plus a list of
// count bounds.
type Constraints struct {
	Choice ChoiceConstraint
	Counts []CountConstraint
}

// Official returns the 2016-rules constraints: prefer below-the-line,
// requiring at least 1 above-the-line preference or 6 below-the-line
// preferences. Preferring below-the-line votes is codified in section
// 269(2) of the Electoral Act.
func Official() Constraints {
	return Constraints{
		Choice: PreferBelow,
		Counts: []CountConstraint{{MinAbove, 1}, {MinBelow, 6}},
	}
}

// Strict2013 returns the pre-2016 strict-preferential constraints.
func Strict2013() Constraints {
	return Constraints{
		Choice: Strict,
		Counts: []CountConstraint{{MinAbove, 6}, {MinBelow, 12}},
	}
}

func checkMin(voteLen, min int, kind CountConstraintKind) error {
	if voteLen < min {
		return core.BallotError{Kind: errKind(kind), N: voteLen}
	}
	return nil
}

func checkMax(voteLen, max int, kind CountConstraintKind) error {
	if voteLen > max {
		return core.BallotError{Kind: errKind(kind), N: voteLen}
	}
	return nil
}

func errKind(k CountConstraintKind) core.BallotErrorKind {
	switch k {
	case MinAbove:
		return core.InvalidMinAbove
	case MaxAbove:
		return core.InvalidMaxAbove
	case MinBelow:
		return core.InvalidMinBelow
	default:
		return core.InvalidMaxBelow
	}
}

func (c Constraints) checkAbove(voteLen int) error {
	for _, cc := range c.Counts {
		switch cc.Kind {
		case MinAbove:
			if err := checkMin(voteLen, cc.N, MinAbove); err != nil {
				return err
			}
		case MaxAbove:
			if err := checkMax(voteLen, cc.N, MaxAbove); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c Constraints) checkBelow(voteLen int) error {
	for _, cc := range c.Counts {
		switch cc.Kind {
		case MinBelow:
			if err := checkMin(voteLen, cc.N, MinBelow); err != nil {
				return err
			}
		case MaxBelow:
			if err := checkMax(voteLen, cc.N, MaxBelow); err != nil {
				return err
			}
		}
	}
	return nil
}

// prefMap is a preference-number-keyed map, built while parsing one half
// of a ballot.
type prefMap[T any] struct {
	entries map[uint32]T
	cutoff  *uint32 // smallest repeated preference number, if any
}

// createMap scans raw fields left to right, resolving field index to a
// value of type T via resolve, and recording the smallest preference
// number that was assigned twice.
func createMap[T any](fields []string, resolve func(index int) (T, bool)) (prefMap[T], error) {
	m := prefMap[T]{entries: make(map[uint32]T)}

	for index, raw := range fields {
		var pref uint64
		switch raw {
		case "":
			continue
		case "*", "/":
			pref = 1
		default:
			n, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return prefMap[T]{}, core.BallotError{Kind: core.InvalidCharacter}
			}
			pref = n
		}

		value, ok := resolve(index)
		if !ok {
			continue
		}

		key := uint32(pref)
		if _, exists := m.entries[key]; exists {
			if m.cutoff == nil || key < *m.cutoff {
				c := key
				m.cutoff = &c
			}
		}
		m.entries[key] = value
	}
	return m, nil
}

// removeRepeatsAndGaps finds the first preference number whose value
// does not match its 1-based rank, takes the smaller of that and any
// already-known repeat cutoff, and discards every entry at or above the
// cutoff. An empty result is EmptyBallot.
func removeRepeatsAndGaps[T any](m prefMap[T]) (map[uint32]T, error) {
	keys := make([]uint32, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var missing *uint32
	for i, k := range keys {
		want := uint32(i + 1)
		if k != want {
			missing = &want
			break
		}
	}

	cutoff := m.cutoff
	if missing != nil && (cutoff == nil || *missing < *cutoff) {
		cutoff = missing
	}

	out := make(map[uint32]T, len(m.entries))
	for k, v := range m.entries {
		if cutoff != nil && k >= *cutoff {
			continue
		}
		out[k] = v
	}

	if len(out) == 0 {
		return nil, core.BallotError{Kind: core.EmptyBallot}
	}
	return out, nil
}

func sortedKeys[T any](m map[uint32]T) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func flattenBelow(m map[uint32]core.CandidateID) []core.CandidateID {
	out := make([]core.CandidateID, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, m[k])
	}
	return out
}

func flattenAbove(m map[uint32][]core.CandidateID) []core.CandidateID {
	var out []core.CandidateID
	for _, k := range sortedKeys(m) {
		out = append(out, m[k]...)
	}
	return out
}

// ParseBallot parses prefString (a comma-separated string of len(groups)
// above-the-line fields followed by len(candidates) below-the-line
// fields) into a ballot, per constraints. The returned error is always
// a core.BallotError; callers distinguish fatal I/O failures at the
// caller's own stream-reading layer (the InputError half of the
// taxonomy never originates here).
func ParseBallot(prefString string, groups []core.Group, candidates []core.CandidateID, constraints Constraints) (*core.Ballot, error) {
	fields := strings.Split(prefString, ",")

	aboveFields := fields
	var belowFields []string
	if len(fields) >= len(groups) {
		aboveFields = fields[:len(groups)]
		belowFields = fields[len(groups):]
	}

	above, aboveErr := parseAbove(aboveFields, groups, constraints)
	below, belowErr := parseBelow(belowFields, candidates, constraints)

	switch {
	case aboveErr == nil && belowErr != nil:
		return core.NewBallot(above), nil
	case aboveErr != nil && belowErr == nil:
		return core.NewBallot(below), nil
	case aboveErr == nil && belowErr == nil:
		switch constraints.Choice {
		case PreferAbove:
			return core.NewBallot(above), nil
		case PreferBelow:
			return core.NewBallot(below), nil
		default: // Strict
			return nil, core.BallotError{Kind: core.InvalidStrict}
		}
	default:
		return nil, aboveErr
	}
}

func parseAbove(fields []string, groups []core.Group, constraints Constraints) ([]core.CandidateID, error) {
	m, err := createMap(fields, func(index int) ([]core.CandidateID, bool) {
		if index < 0 || index >= len(groups) {
			return nil, false
		}
		return groups[index].CandidateIDs, true
	})
	if err != nil {
		return nil, err
	}
	cut, err := removeRepeatsAndGaps(m)
	if err != nil {
		return nil, err
	}
	if err := constraints.checkAbove(len(cut)); err != nil {
		return nil, err
	}
	return flattenAbove(cut), nil
}

func parseBelow(fields []string, candidates []core.CandidateID, constraints Constraints) ([]core.CandidateID, error) {
	m, err := createMap(fields, func(index int) (core.CandidateID, bool) {
		if index < 0 || index >= len(candidates) {
			return 0, false
		}
		return candidates[index], true
	})
	if err != nil {
		return nil, err
	}
	cut, err := removeRepeatsAndGaps(m)
	if err != nil {
		return nil, err
	}
	if err := constraints.checkBelow(len(cut)); err != nil {
		return nil, err
	}
	return flattenBelow(cut), nil
}
