package core

import (
	"fmt"

	"github.com/senatestv/count-service/tallyerr"
)

// BallotErrorKind classifies a recoverable per-ballot parse failure.
type BallotErrorKind int

// Ballot parse error kinds, per spec §7.
const (
	InvalidCharacter BallotErrorKind = iota
	InvalidMinAbove
	InvalidMaxAbove
	InvalidMinBelow
	InvalidMaxBelow
	InvalidStrict
	EmptyBallot
)

func (k BallotErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidMinAbove:
		return "InvalidMinAbove"
	case InvalidMaxAbove:
		return "InvalidMaxAbove"
	case InvalidMinBelow:
		return "InvalidMinBelow"
	case InvalidMaxBelow:
		return "InvalidMaxBelow"
	case InvalidStrict:
		return "InvalidStrict"
	case EmptyBallot:
		return "EmptyBallot"
	default:
		return "Unknown"
	}
}

// BallotError is a recoverable per-ballot parse failure: the ballot is
// discarded and counted as invalid, and the run continues. N carries
// the offending preference count for the bound-check kinds
// (InvalidMinAbove, InvalidMaxAbove, InvalidMinBelow, InvalidMaxBelow)
// and is meaningless for the others.
type BallotError struct {
	Kind BallotErrorKind
	N    int
}

func (e BallotError) Error() string {
	switch e.Kind {
	case InvalidMinAbove, InvalidMaxAbove, InvalidMinBelow, InvalidMaxBelow:
		return fmt.Sprintf("%s(%d)", e.Kind, e.N)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the tallyerr.ErrInvalid sentinel, so callers can
// classify a ballot parse failure with errors.Is without switching on
// Kind themselves.
func (e BallotError) Unwrap() error {
	return tallyerr.ErrInvalid
}

// EraseDetail returns a copy of e with its numeric detail erased, so
// that all size-variant errors of the same class collapse to one
// bucket when aggregated by Stats.
func (e BallotError) EraseDetail() BallotError {
	return BallotError{Kind: e.Kind}
}

// InputError wraps an unrecoverable I/O or CSV-framing failure
// encountered while draining the ballot stream. Seeing one aborts the
// whole count.
type InputError struct {
	Err error
}

func (e InputError) Error() string {
	return fmt.Sprintf("input error: %v", e.Err)
}

// Unwrap exposes both the wrapped cause and the tallyerr.ErrFatal
// sentinel, so errors.Is(err, tallyerr.ErrFatal) classifies an
// InputError as unrecoverable while errors.Is/As can still reach the
// original cause.
func (e InputError) Unwrap() []error {
	return []error{e.Err, tallyerr.ErrFatal}
}

// ParsedRow is one item yielded by a ballot stream: either a legal
// ballot, or a classified error. Exactly one of Ballot and Err is set,
// unless both are nil in which case the row should be skipped (used by
// streaming sources that filter out structurally blank rows upstream).
type ParsedRow struct {
	Ballot *Ballot
	Err    error // either a BallotError (recoverable) or an InputError (fatal)
}
