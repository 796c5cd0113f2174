// Package munge provides concrete ballot transforms applied after
// parsing and before ingestion into the vote map, implementing the
// core.Munger hook.
package munge

import "github.com/senatestv/count-service/core"

// TruncateMunger caps a ballot's preference list at MaxPrefs, discarding
// any lower preferences beyond that depth. A re-expression of the
// original source's generic BallotMunge transform shape, specialised to
// the one concrete truncation use the distillation called out.
type TruncateMunger struct {
	MaxPrefs int
}

// Munge implements core.Munger.
func (t TruncateMunger) Munge(ballot *core.Ballot, groups []core.Group, candidates core.CandidateMap) {
	if t.MaxPrefs <= 0 || len(ballot.Prefs) <= t.MaxPrefs {
		return
	}
	ballot.Prefs = ballot.Prefs[:t.MaxPrefs]
}
