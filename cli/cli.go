// Package cli wires the counting engine to a command-line front end,
// built on github.com/alecthomas/kong.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/senatestv/count-service/core"
	"github.com/senatestv/count-service/ingest"
	"github.com/senatestv/count-service/munge"
	"github.com/senatestv/count-service/parser"
	"github.com/senatestv/count-service/report"
	"github.com/senatestv/count-service/resolver"
	"github.com/senatestv/count-service/tallylog"
)

// CLI is the command-line surface: positional arguments
// <candidates_file> <prefs_file> <state> [num_positions=12], plus
// repeatable --munger flags and a handful of rule-selection switches.
type CLI struct {
	CandidatesFile string `arg:"" type:"existingfile" help:"AEC candidates CSV file."`
	PrefsFile      string `arg:"" type:"existingfile" help:"AEC preferences CSV file."`
	State          string `arg:"" help:"State abbreviation, e.g. NSW."`
	NumPositions   int    `arg:"" optional:"" default:"12" help:"Number of seats to fill."`

	Mungers  []string `name:"munger" help:"Ballot munger to apply, repeatable: truncate:<n>, group-recolor."`
	Strict   bool     `help:"Use the strict 2013-rules constraints instead of the 2016 official rules."`
	Majority bool     `name:"majority-short-circuit" help:"Enable the two-candidate majority short-circuit (2013 rules)."`

	ExhaustedCSV string `name:"exhausted-csv" help:"Optional path to write the per-round exhausted-ballot CSV."`
	InvalidCSV   string `name:"invalid-csv" help:"Optional path to write the per-kind invalid-ballot CSV."`

	Verbose bool `short:"v" help:"Enable trace-level logging."`
}

// Run executes a full count and writes its report to stdout, and to
// the optional CSV files if requested.
func (c *CLI) Run() error {
	if c.Verbose {
		tallylog.SetLevel(tallylog.LevelTrace)
	}

	candidatesFile, err := os.Open(c.CandidatesFile)
	if err != nil {
		return fmt.Errorf("opening candidates file: %w", err)
	}
	defer candidatesFile.Close()

	allCandidates, err := ingest.ReadCandidates(candidatesFile)
	if err != nil {
		return fmt.Errorf("reading candidates: %w", err)
	}

	candidates := core.StateCandidates(allCandidates, c.State)
	if len(candidates) == 0 {
		return fmt.Errorf("no Senate candidates found for state %q", c.State)
	}
	groups := core.BuildGroups(allCandidates, c.State)

	ids := make([]core.CandidateID, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	constraints := parser.Official()
	if c.Strict {
		constraints = parser.Strict2013()
	}

	mungers, err := c.buildMungers()
	if err != nil {
		return err
	}

	prefsFile, err := os.Open(c.PrefsFile)
	if err != nil {
		return fmt.Errorf("opening preferences file: %w", err)
	}
	defer prefsFile.Close()

	stream := ingest.ReadPreferences(prefsFile, groups, ids, constraints)

	senate, err := core.Run(core.RunConfig{
		Candidates:           candidates,
		Groups:               groups,
		Seats:                c.NumPositions,
		Ballots:              stream,
		Mungers:              mungers,
		Resolver:             resolver.Stdin{In: os.Stdin, Out: os.Stderr},
		MajorityShortCircuit: c.Majority,
	})
	if err != nil {
		return fmt.Errorf("counting: %w", err)
	}

	if err := report.WriteSenate(os.Stdout, senate, candidates); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if c.ExhaustedCSV != "" {
		if err := writeCSV(c.ExhaustedCSV, func(f *os.File) error { return report.WriteExhausted(f, senate.Stats) }); err != nil {
			return err
		}
	}
	if c.InvalidCSV != "" {
		if err := writeCSV(c.InvalidCSV, func(f *os.File) error { return report.WriteInvalid(f, senate.Stats) }); err != nil {
			return err
		}
	}

	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
