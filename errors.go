package slippi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseErrorKind distinguishes the ways a replay can fail to decode.
type ParseErrorKind int

// ParseErrorKinds
const (
	// Truncated means the stream ended inside a payload whose declared size
	// was non-zero.
	Truncated ParseErrorKind = iota
	// UnknownCode means an event code had no entry in the payload-size
	// table.
	UnknownCode
	// UnexpectedEvent means the structural order of the event stream was
	// violated (e.g. the first event after the payload table was not
	// GameStart).
	UnexpectedEvent
	// MissingFrames means a frame-index gap greater than one was observed.
	MissingFrames
	// BadContainerLiteral means one of the container's literal byte
	// sequences (the opening preamble, the metadata key, the closing token)
	// did not match.
	BadContainerLiteral
)

func (k ParseErrorKind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case UnknownCode:
		return "unknown code"
	case UnexpectedEvent:
		return "unexpected event"
	case MissingFrames:
		return "missing frames"
	case BadContainerLiteral:
		return "bad container literal"
	default:
		return "unknown parse error kind"
	}
}

// ParseError reports a malformed or truncated replay. It is always fatal for
// the file it names; callers processing a batch of replays should skip the
// file and continue.
type ParseError struct {
	Kind     ParseErrorKind
	Filename string
	Offset   int64
	cause    error
}

func (e *ParseError) Error() string {
	name := e.Filename
	if name == "" {
		name = "?"
	}
	msg := fmt.Sprintf("parse error (%s @ 0x%x): %s", name, e.Offset, e.Kind)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.cause }

// newParseError builds a ParseError, wrapping an optional underlying cause
// with github.com/pkg/errors so a stack trace is retained for logging.
func newParseError(kind ParseErrorKind, filename string, offset int64, cause error) *ParseError {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return &ParseError{Kind: kind, Filename: filename, Offset: offset, cause: wrapped}
}

// DomainErrorKind distinguishes the ways a successfully-parsed replay can
// still be unusable for stat computation.
type DomainErrorKind int

// DomainErrorKinds
const (
	// PlayerCountErr means the replay does not have exactly two non-empty
	// human player slots.
	PlayerCountErr DomainErrorKind = iota
	// IdentifierErr means a caller-supplied connect-code or port did not
	// match any player in the replay.
	IdentifierErr
)

// DomainError reports that a replay parsed successfully but cannot be used
// for stat computation (wrong player count, unknown identifier). Distinct
// from ParseError: the bytes were fine, the content wasn't.
type DomainError struct {
	Kind    DomainErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newPlayerCountError(count int) error {
	return errors.WithStack(&DomainError{
		Kind:    PlayerCountErr,
		Message: fmt.Sprintf("expected exactly 2 human players, found %d", count),
	})
}

func newIdentifierError(identifier interface{}) error {
	return errors.WithStack(&DomainError{
		Kind:    IdentifierErr,
		Message: fmt.Sprintf("no player matched identifier %v", identifier),
	})
}

// IsParseError reports whether err is (or wraps) a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsDomainError reports whether err is (or wraps) a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
