package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senatestv/count-service/tallyerr"
)

func TestBallotErrorClassifiesAsInvalid(t *testing.T) {
	err := error(BallotError{Kind: EmptyBallot})
	require.ErrorIs(t, err, tallyerr.ErrInvalid)
	require.NotErrorIs(t, err, tallyerr.ErrFatal)
}

func TestInputErrorClassifiesAsFatalAndKeepsCause(t *testing.T) {
	cause := errors.New("short read")
	err := error(InputError{Err: cause})

	require.ErrorIs(t, err, tallyerr.ErrFatal)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, tallyerr.ErrInvalid)
}

func TestEraseDetailDropsNButKeepsInvalidClassification(t *testing.T) {
	err := error(BallotError{Kind: InvalidMinAbove, N: 6}.EraseDetail())
	require.ErrorIs(t, err, tallyerr.ErrInvalid)

	var berr BallotError
	require.ErrorAs(t, err, &berr)
	require.Equal(t, 0, berr.N)
}
