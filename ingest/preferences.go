package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/senatestv/count-service/core"
	"github.com/senatestv/count-service/parser"
)

// ReadPreferences streams an AEC preferences CSV, parsing each row's
// "Preferences" column into a ballot as it is read. The returned stream
// yields exactly one core.ParsedRow per data row; a malformed CSV
// framing failure ends the stream with an InputError row.
func ReadPreferences(r io.Reader, groups []core.Group, candidates []core.CandidateID, constraints parser.Constraints) core.BallotStream {
	return func(yield func(core.ParsedRow) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1

		header, err := cr.Read()
		if err != nil {
			yield(core.ParsedRow{Err: core.InputError{Err: fmt.Errorf("reading preferences header: %w", err)}})
			return
		}
		idx := headerIndex(header)
		prefCol, ok := idx["Preferences"]
		if !ok {
			prefCol, ok = idx["preferences"]
		}
		if !ok {
			yield(core.ParsedRow{Err: core.InputError{Err: fmt.Errorf("no Preferences column in header")}})
			return
		}

		for rowNum := 0; ; rowNum++ {
			record, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(core.ParsedRow{Err: core.InputError{Err: fmt.Errorf("reading preferences row %d: %w", rowNum, err)}})
				return
			}
			if prefCol >= len(record) {
				if !yield(core.ParsedRow{Err: core.InputError{Err: fmt.Errorf("row %d: missing Preferences field", rowNum)}}) {
					return
				}
				continue
			}

			ballot, perr := parser.ParseBallot(record[prefCol], groups, candidates, constraints)
			if perr != nil {
				if !yield(core.ParsedRow{Err: perr}) {
					return
				}
				continue
			}
			if !yield(core.ParsedRow{Ballot: ballot}) {
				return
			}
		}
	}
}
