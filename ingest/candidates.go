// Package ingest reads the two AEC CSV files a Senate count needs: the
// candidates (nomination) file and the preferences file, the latter
// streamed through the ballot parser as it is read.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/senatestv/count-service/core"
)

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func column(record []string, idx map[string]int, name string) (string, error) {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return "", fmt.Errorf("ingest: missing column %q", name)
	}
	return record[i], nil
}

// ReadCandidates reads an AEC candidates CSV and returns every
// candidate filtered to nom_ty == "S" (Senate nominations). Candidate
// IDs are assigned as the 0-based row index in the raw file, before
// filtering, matching the source format's own numbering.
func ReadCandidates(r io.Reader) ([]core.Candidate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading candidates header: %w", err)
	}
	idx := headerIndex(header)

	var out []core.Candidate
	for rowNum := 0; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading candidates row %d: %w", rowNum, err)
		}

		nomType, err := column(record, idx, "nom_ty")
		if err != nil {
			return nil, err
		}
		if nomType != "S" {
			continue
		}

		surname, _ := column(record, idx, "surname")
		otherNames, _ := column(record, idx, "ballot_given_nm")
		groupName, _ := column(record, idx, "ticket")
		party, _ := column(record, idx, "party_ballot_nm")
		state, _ := column(record, idx, "state_ab")

		out = append(out, core.Candidate{
			ID:         core.CandidateID(rowNum),
			Surname:    surname,
			OtherNames: otherNames,
			GroupName:  groupName,
			Party:      party,
			State:      state,
		})
	}
	return out, nil
}
