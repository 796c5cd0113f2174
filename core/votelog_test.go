package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteLogUpdateVoteAppendsSequentially(t *testing.T) {
	v := NewVoteLog()
	v.UpdateVote(0, NewInt(5))
	v.UpdateVote(1, NewInt(3))

	require.Equal(t, 2, v.Len())
	require.True(t, v.At(0).Equal(NewInt(5)))
	require.True(t, v.At(1).Equal(NewInt(8)))
	require.True(t, v.Latest().Equal(NewInt(8)))
}

func TestVoteLogUpdateVoteAddsInPlace(t *testing.T) {
	v := NewVoteLog()
	v.UpdateVote(0, NewInt(5))
	v.UpdateVote(0, NewInt(2))

	require.Equal(t, 1, v.Len())
	require.True(t, v.Latest().Equal(NewInt(7)))
}

func TestVoteLogUpdateVoteFillsGapByDuplicatingLatest(t *testing.T) {
	v := NewVoteLog()
	v.UpdateVote(0, NewInt(5))
	v.UpdateVote(3, NewInt(2))

	require.Equal(t, 4, v.Len())
	require.True(t, v.At(0).Equal(NewInt(5)))
	require.True(t, v.At(1).Equal(NewInt(5)))
	require.True(t, v.At(2).Equal(NewInt(5)))
	require.True(t, v.At(3).Equal(NewInt(7)))
}

func TestVoteLogCompareLexicographic(t *testing.T) {
	a := NewVoteLog()
	a.UpdateVote(0, NewInt(3))
	a.UpdateVote(1, NewInt(1))

	b := NewVoteLog()
	b.UpdateVote(0, NewInt(3))
	b.UpdateVote(1, NewInt(2))

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestVoteLogComparePrefixThenLength(t *testing.T) {
	short := NewVoteLog()
	short.UpdateVote(0, NewInt(4))

	long := NewVoteLog()
	long.UpdateVote(0, NewInt(4))
	long.UpdateVote(1, NewInt(0))

	require.Equal(t, -1, short.Compare(long))
	require.Equal(t, 1, long.Compare(short))
}
