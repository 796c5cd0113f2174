package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senatestv/count-service/core"
)

func candidates() core.CandidateMap {
	return core.CandidateMap{
		1: {ID: 1, Surname: "Smith", OtherNames: "Jane", Party: "Independent"},
		2: {ID: 2, Surname: "Brown", OtherNames: "Ash", Party: "Independent"},
	}
}

func TestStdinResolvesToChosenID(t *testing.T) {
	var out strings.Builder
	s := Stdin{In: strings.NewReader("2\n"), Out: &out}

	id, ok := s.Resolve([]core.CandidateID{1, 2}, candidates())
	require.True(t, ok)
	require.Equal(t, core.CandidateID(2), id)
	require.Contains(t, out.String(), "Jane Smith")
}

func TestStdinRejectsIDNotInTiedSet(t *testing.T) {
	var out strings.Builder
	s := Stdin{In: strings.NewReader("99\n"), Out: &out}

	_, ok := s.Resolve([]core.CandidateID{1, 2}, candidates())
	require.False(t, ok)
}

func TestStdinRejectsUnparsableInput(t *testing.T) {
	var out strings.Builder
	s := Stdin{In: strings.NewReader("not a number\n"), Out: &out}

	_, ok := s.Resolve([]core.CandidateID{1, 2}, candidates())
	require.False(t, ok)
}

func TestStdinEOFIsUnresolved(t *testing.T) {
	var out strings.Builder
	s := Stdin{In: strings.NewReader(""), Out: &out}

	_, ok := s.Resolve([]core.CandidateID{1, 2}, candidates())
	require.False(t, ok)
}
