package core

// CandidateID identifies a candidate, dense within a state.
type CandidateID int

// Candidate describes a single nomination.
type Candidate struct {
	ID         CandidateID
	Surname    string
	OtherNames string
	GroupName  string
	Party      string
	State      string
}

// CandidateMap maps candidate IDs to their details. Supplied by the
// caller; the engine never mutates it.
type CandidateMap map[CandidateID]Candidate

// Group is an above-the-line voting group: a name plus the ordered list
// of candidates it represents. "UG" (ungrouped) is never a Group.
type Group struct {
	Name         string
	CandidateIDs []CandidateID
}

// BuildGroups derives the ordered list of groups for a state from a flat
// candidate list, in ballot-paper order, skipping the ungrouped
// candidates recorded under the group name "UG".
func BuildGroups(candidates []Candidate, state string) []Group {
	var groups []Group
	for _, c := range candidates {
		if c.State != state {
			continue
		}
		if n := len(groups); n > 0 && groups[n-1].Name == c.GroupName {
			groups[n-1].CandidateIDs = append(groups[n-1].CandidateIDs, c.ID)
			continue
		}
		if c.GroupName == "UG" {
			continue
		}
		groups = append(groups, Group{Name: c.GroupName, CandidateIDs: []CandidateID{c.ID}})
	}
	return groups
}

// StateCandidates filters a flat candidate list down to one state and
// indexes it by ID.
func StateCandidates(candidates []Candidate, state string) CandidateMap {
	result := make(CandidateMap)
	for _, c := range candidates {
		if c.State == state {
			result[c.ID] = c
		}
	}
	return result
}
