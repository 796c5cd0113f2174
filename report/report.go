// Package report writes the text and CSV output of a completed count.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/senatestv/count-service/core"
)

// WriteSenate writes the ordered list of elected senators as text:
// name, party, final tally, in election order.
func WriteSenate(w io.Writer, senate core.Senate, candidates core.CandidateMap) error {
	for i, seat := range senate.Elected {
		c := candidates[seat.ID]
		if _, err := fmt.Fprintf(w, "%d. %s %s (%s) — %s\n", i+1, c.OtherNames, c.Surname, c.Party, seat.Tally); err != nil {
			return err
		}
	}
	if senate.Tied {
		if _, err := fmt.Fprintln(w, "result is TIED for the final seat"); err != nil {
			return err
		}
	}
	return nil
}

// WriteExhausted writes the per-round exhausted-ballot CSV, columns
// round, ballots_exhausted, value_exhausted_num, value_exhausted_den.
// The value is emitted as an exact numerator/denominator pair, never
// decimal, so no exactness is lost crossing this boundary.
func WriteExhausted(w io.Writer, stats *core.Stats) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"round", "ballots_exhausted", "value_exhausted_num", "value_exhausted_den"}); err != nil {
		return err
	}

	exhausted := stats.ExhaustedVotes()
	rounds := make([]int, 0, len(exhausted))
	for round := range exhausted {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	for _, round := range rounds {
		e := exhausted[round]
		record := []string{
			fmt.Sprintf("%d", round),
			fmt.Sprintf("%d", e.Ballots),
			e.Value.Num().String(),
			e.Value.Den().String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteInvalid writes the per-kind invalid ballot counts as CSV,
// columns kind, count.
func WriteInvalid(w io.Writer, stats *core.Stats) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"kind", "count"}); err != nil {
		return err
	}

	invalid := stats.InvalidVotes()
	kinds := make([]core.BallotErrorKind, 0, len(invalid))
	for k := range invalid {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, k := range kinds {
		if err := cw.Write([]string{k.String(), fmt.Sprintf("%d", invalid[k])}); err != nil {
			return err
		}
	}
	return cw.Error()
}
