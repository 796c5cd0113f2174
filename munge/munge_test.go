package munge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senatestv/count-service/core"
)

func TestTruncateMungerCapsPrefs(t *testing.T) {
	b := core.NewBallot([]core.CandidateID{1, 2, 3, 4, 5})
	(TruncateMunger{MaxPrefs: 3}).Munge(b, nil, nil)
	require.Equal(t, []core.CandidateID{1, 2, 3}, b.Prefs)
}

func TestTruncateMungerLeavesShortBallotAlone(t *testing.T) {
	b := core.NewBallot([]core.CandidateID{1, 2})
	(TruncateMunger{MaxPrefs: 5}).Munge(b, nil, nil)
	require.Equal(t, []core.CandidateID{1, 2}, b.Prefs)
}

func TestTruncateMungerZeroDepthIsNoOp(t *testing.T) {
	b := core.NewBallot([]core.CandidateID{1, 2, 3})
	(TruncateMunger{}).Munge(b, nil, nil)
	require.Equal(t, []core.CandidateID{1, 2, 3}, b.Prefs)
}

func TestNewGroupRecolorMungerRejectsUnsupportedState(t *testing.T) {
	_, err := NewGroupRecolorMunger("TAS")
	require.Error(t, err)
}

func TestGroupRecolorMungerAppendsMissingMajorParty(t *testing.T) {
	m, err := NewGroupRecolorMunger("NSW")
	require.NoError(t, err)

	groups := []core.Group{
		{Name: "N", CandidateIDs: []core.CandidateID{10, 11}},
		{Name: "F", CandidateIDs: []core.CandidateID{20, 21}},
	}
	candidates := core.CandidateMap{
		1: {ID: 1, Party: "Australian Labor Party"},
	}

	b := core.NewBallot([]core.CandidateID{1})
	m.Munge(b, groups, candidates)

	require.Equal(t, []core.CandidateID{1, 20, 21}, b.Prefs)

	summary := m.Summary()
	require.Equal(t, 1, summary.Total)
	require.Equal(t, 1, summary.Hits)
}

func TestGroupRecolorMungerSkipsCandidatesAlreadyPresent(t *testing.T) {
	m, err := NewGroupRecolorMunger("QLD")
	require.NoError(t, err)

	groups := []core.Group{
		{Name: "D", CandidateIDs: []core.CandidateID{1, 2}},
		{Name: "G", CandidateIDs: []core.CandidateID{3, 4}},
	}
	candidates := core.CandidateMap{
		3: {ID: 3, Party: "Liberal National Party of Queensland"},
	}

	b := core.NewBallot([]core.CandidateID{3, 1})
	m.Munge(b, groups, candidates)

	// Liberal first preference pulls in the Labor group (D); candidate 1
	// is already present, so only candidate 2 is appended.
	require.Equal(t, []core.CandidateID{3, 1, 2}, b.Prefs)
}

func TestGroupRecolorMungerSummaryEmptyWhenUnused(t *testing.T) {
	m, err := NewGroupRecolorMunger("SA")
	require.NoError(t, err)
	require.Equal(t, Summary{}, m.Summary())
}
