package tallyerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageErrorWrapsSentinelAndMessage(t *testing.T) {
	err := MessageError(ErrInvalid, "bad ballot")
	require.EqualError(t, err, "bad ballot")
	require.ErrorIs(t, err, ErrInvalid)
	require.NotErrorIs(t, err, ErrFatal)
}

func TestMessageErrorfFormats(t *testing.T) {
	err := MessageErrorf(ErrInternal, "candidate %d appears twice", 7)
	require.EqualError(t, err, "candidate 7 appears twice")
	require.ErrorIs(t, err, ErrInternal)
}

func TestTypeReportsKind(t *testing.T) {
	cases := []struct {
		kind error
		want string
	}{
		{ErrInvalid, "invalid"},
		{ErrFatal, "fatal"},
		{ErrInternal, "internal"},
	}
	for _, c := range cases {
		err := MessageError(c.kind, "x")
		typed, ok := err.(interface{ Type() string })
		require.True(t, ok)
		require.Equal(t, c.want, typed.Type())
	}
}

func TestUnwrapReachesSentinel(t *testing.T) {
	err := MessageError(ErrFatal, "input exploded")
	require.True(t, errors.Is(err, ErrFatal))
}
