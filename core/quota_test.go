package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotaFormula(t *testing.T) {
	q := Quota(NewInt(4376143), 6)
	require.True(t, q.Equal(NewInt(625164)))
}

func TestQuotaExactDivision(t *testing.T) {
	// 10 valid votes, 1 seat: ceil(10/2) = 5.
	q := Quota(NewInt(10), 1)
	require.True(t, q.Equal(NewInt(5)))
}

func TestQuotaRoundsUp(t *testing.T) {
	// 5 valid votes over 1 seat: ceil(5/2) = 3.
	q := Quota(NewInt(5), 1)
	require.True(t, q.Equal(NewInt(3)))
}
