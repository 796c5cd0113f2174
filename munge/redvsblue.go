package munge

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/senatestv/count-service/core"
)

// firstPref classifies a ballot by the party of its first preference
// that names a recognised major party.
type firstPref int

const (
	other firstPref = iota
	green
	labor
	liberal
)

// GroupRecolorMunger extends every ballot toward a synthetic two-party
// comparison, strengthening the two major parties' groups the way the
// original source's RedVsBlue munger did: it classifies the ballot by
// the first recognised party among its preferences and appends the
// missing major-party group(s) to the end of its preference list,
// skipping candidates already present. Ballots with no recognised party
// get both major-party groups, in alternating order.
//
// This answers "how would this electorate have voted between two
// blocs", not an official count; it is opt-in, via --munger.
type GroupRecolorMunger struct {
	liberalGroup string
	laborGroup   string

	numGreen   int
	numLabor   int
	numLiberal int
	numOther   int
	numHits    int
	total      int
}

// NewGroupRecolorMunger returns a GroupRecolorMunger configured for
// state's major-party group letters. Unlike the source this is adapted
// from, an unsupported state is a returned error, not a panic.
func NewGroupRecolorMunger(state string) (*GroupRecolorMunger, error) {
	var liberalGroup, laborGroup string
	switch state {
	case "NSW":
		liberalGroup, laborGroup = "F", "N"
	case "QLD":
		liberalGroup, laborGroup = "G", "D"
	case "SA":
		liberalGroup, laborGroup = "H", "B"
	default:
		return nil, fmt.Errorf("munge: unsupported state for group-recolor munger: %q", state)
	}
	return &GroupRecolorMunger{liberalGroup: liberalGroup, laborGroup: laborGroup}, nil
}

func categorise(ballot *core.Ballot, candidates core.CandidateMap) firstPref {
	for _, id := range ballot.Prefs {
		c, ok := candidates[id]
		if !ok {
			continue
		}
		switch c.Party {
		case "Labor", "Australian Labor Party":
			return labor
		case "Liberal", "The Nationals", "Liberal National Party of Queensland":
			return liberal
		case "The Greens":
			return green
		}
	}
	return other
}

// Munge implements core.Munger.
func (m *GroupRecolorMunger) Munge(ballot *core.Ballot, groups []core.Group, candidates core.CandidateMap) {
	m.total++

	var groupsToPref []string
	switch categorise(ballot, candidates) {
	case labor:
		m.numLabor++
		groupsToPref = []string{m.liberalGroup}
	case liberal:
		m.numLiberal++
		groupsToPref = []string{m.laborGroup}
	case green:
		m.numGreen++
		groupsToPref = []string{m.laborGroup, m.liberalGroup}
	default:
		m.numOther++
		if m.numOther%2 == 0 {
			groupsToPref = []string{m.laborGroup, m.liberalGroup}
		} else {
			groupsToPref = []string{m.liberalGroup, m.laborGroup}
		}
	}

	already := make(map[core.CandidateID]bool, len(ballot.Prefs))
	for _, id := range ballot.Prefs {
		already[id] = true
	}

	var extra []core.CandidateID
	for _, groupName := range groupsToPref {
		for _, g := range groups {
			if g.Name != groupName {
				continue
			}
			for _, cid := range g.CandidateIDs {
				if !already[cid] {
					extra = append(extra, cid)
					already[cid] = true
				}
			}
		}
	}

	if len(extra) > 0 {
		m.numHits++
		ballot.Prefs = append(ballot.Prefs, extra...)
	}
}

// Summary is a human-readable vote-share breakdown of the ballots this
// munger has processed so far. Percentages, not exact tallies, are the
// right use for decimal: this is a display report, not the count
// itself.
type Summary struct {
	Green, Labor, Liberal, Other decimal.Decimal
	Hits, Total                  int
}

// Summary computes the current vote-share breakdown.
func (m *GroupRecolorMunger) Summary() Summary {
	if m.total == 0 {
		return Summary{}
	}
	total := decimal.NewFromInt(int64(m.total))
	pct := func(n int) decimal.Decimal {
		return decimal.NewFromInt(int64(n)).Div(total).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return Summary{
		Green:   pct(m.numGreen),
		Labor:   pct(m.numLabor),
		Liberal: pct(m.numLiberal),
		Other:   pct(m.numOther),
		Hits:    m.numHits,
		Total:   m.total,
	}
}
