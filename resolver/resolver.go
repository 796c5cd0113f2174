// Package resolver provides concrete core.TieBreakResolver
// implementations.
package resolver

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/senatestv/count-service/core"
)

// Stdin resolves a last-candidate tie by prompting an operator on a
// terminal: it lists the tied candidates by name and party and reads a
// line containing the chosen candidate id.
type Stdin struct {
	In  io.Reader
	Out io.Writer
}

// Resolve implements core.TieBreakResolver.
func (s Stdin) Resolve(tied []core.CandidateID, candidates core.CandidateMap) (core.CandidateID, bool) {
	sorted := append([]core.CandidateID(nil), tied...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Fprintln(s.Out, "Tied for exclusion, choose one by id:")
	for _, id := range sorted {
		c := candidates[id]
		fmt.Fprintf(s.Out, "  %d: %s %s (%s)\n", id, c.OtherNames, c.Surname, c.Party)
	}
	fmt.Fprint(s.Out, "> ")

	scanner := bufio.NewScanner(s.In)
	if !scanner.Scan() {
		return 0, false
	}

	var chosen int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &chosen); err != nil {
		return 0, false
	}

	id := core.CandidateID(chosen)
	for _, t := range sorted {
		if t == id {
			return id, true
		}
	}
	return 0, false
}
