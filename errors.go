package rjson

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies every failure the codec reports.
type ErrorKind uint8

const (
	// UnknownError is the zero value; KindOf returns it for errors that
	// did not originate in this package.
	UnknownError ErrorKind = iota
	// SyntaxError marks an unexpected character, malformed literal or
	// number shape, missing comma/colon, trailing comma or a missing
	// bracket.
	SyntaxError
	// EncodingError marks an invalid escape sequence, a lone or unpaired
	// surrogate, a decoded NUL codepoint or an unescaped control byte.
	EncodingError
	// StructuralError marks content after the top-level value or a
	// non-string object key.
	StructuralError
	// LimitError marks hitting the nesting depth ceiling, on either
	// parse or serialize.
	LimitError
	// NumericError marks a number overflowing double precision on parse
	// or a non-finite number on serialize.
	NumericError
	// AllocError marks memory exhaustion during parse or mutation.
	AllocError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case EncodingError:
		return "encoding error"
	case StructuralError:
		return "structural error"
	case LimitError:
		return "limit exceeded"
	case NumericError:
		return "numeric error"
	case AllocError:
		return "allocation failure"
	default:
		return "unknown error"
	}
}

// Sentinel errors returned by the mutation API.
var (
	// ErrNotArrayOrObject signals that the receiving node is a
	// standalone value.
	ErrNotArrayOrObject = errors.New("not array or object")
	// ErrAttached signals that the appended node already has a parent.
	ErrAttached = errors.New("node already attached")
	// ErrNilNode signals a nil node argument.
	ErrNilNode = errors.New("nil node")
	// ErrAlloc signals a failed allocation; the container is unchanged
	// and the caller keeps ownership of the rejected value.
	ErrAlloc = errors.New("allocation failed")
)

// ParseError captures what went wrong when parsing and where.
type ParseError struct {
	kind     ErrorKind
	msg      string
	row, col int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.row+1, e.col+1, e.kind, e.msg)
}

// Where returns the row and column where parsing failed, both zero-based.
func (e *ParseError) Where() (row, col int) {
	return e.row, e.col
}

// Kind returns the error class.
func (e *ParseError) Kind() ErrorKind { return e.kind }

// SerializeError captures why serialization was aborted.
type SerializeError struct {
	kind ErrorKind
	msg  string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize: %s: %s", e.kind, e.msg)
}

// Kind returns the error class.
func (e *SerializeError) Kind() ErrorKind { return e.kind }

// KindOf reports the ErrorKind of any error returned by this package.
// Foreign errors yield UnknownError and false.
func KindOf(err error) (ErrorKind, bool) {
	switch e := errors.Cause(err).(type) {
	case *ParseError:
		return e.kind, true
	case *SerializeError:
		return e.kind, true
	}
	if errors.Cause(err) == ErrAlloc {
		return AllocError, true
	}
	return UnknownError, false
}
