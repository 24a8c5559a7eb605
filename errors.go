package formula

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrorKind identifies the problem an Error describes.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// EmptyExpression indicates an input with no text at all.
	EmptyExpression
	// BadNumericalExpression indicates a position where a number was
	// expected, but there was no digit, '.', '(', or letter.
	BadNumericalExpression
	// UnknownFunction indicates an identifier that names no constant or
	// function.
	UnknownFunction
	// ExpectedChar indicates a missing '(', ')', or ','.
	ExpectedChar
	// OutOfRange indicates a result that does not fit the requested type.
	OutOfRange
	// TrailingGarbage indicates text left over after a complete expression.
	TrailingGarbage
)

func (k ErrorKind) String() string {
	switch k {
	case kindNone:
		return "None"
	case EmptyExpression:
		return "EmptyExpression"
	case BadNumericalExpression:
		return "BadNumericalExpression"
	case UnknownFunction:
		return "UnknownFunction"
	case ExpectedChar:
		return "ExpectedChar"
	case OutOfRange:
		return "OutOfRange"
	case TrailingGarbage:
		return "TrailingGarbage"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is an error in an expression. Begin and End are byte offsets into
// Src; when they are equal, the error marks a position rather than a span.
type Error struct {
	// Kind is the type of error.
	Kind ErrorKind
	// Expected is the missing character for ExpectedChar errors.
	Expected byte
	// Type names the requested result type for OutOfRange errors: "float",
	// "int32", or "uint32".
	Type string
	// Src is the complete input expression.
	Src string
	// Begin and End delimit the offending text in Src.
	Begin, End int
}

// Message returns the description of the error without position info.
func (err *Error) Message() string {
	switch err.Kind {
	case EmptyExpression:
		return "Empty expression"
	case BadNumericalExpression:
		return "Bad numerical expression"
	case UnknownFunction:
		return "Unknown function"
	case ExpectedChar:
		return "Expected '" + string(err.Expected) + "'"
	case OutOfRange:
		switch err.Type {
		case "float":
			return "Float out of range"
		case "int32":
			return "Signed integer out of range"
		case "uint32":
			return "Unsigned integer out of range"
		}
		return err.Type + " out of range"
	case TrailingGarbage:
		return "Garbage at end of expression"
	default:
		return "no error"
	}
}

// Text returns the input text the error refers to. For a span, that is the
// span itself. For a position, it is the rest of the input from there.
func (err *Error) Text() string {
	if err.End != err.Begin {
		return err.Src[err.Begin:err.End]
	}
	return err.Src[err.Begin:]
}

func (err *Error) Error() string {
	return errpos(err.Pos(), err.Message()+": "+strconv.Quote(err.Text()))
}

// Pos returns the 1-based column, in bytes, at which the error begins.
func (err *Error) Pos() int {
	return err.Begin + 1
}

// Is reports whether target is an *Error of the same kind. This allows
// errors.Is(err, ErrUnknownFunction) and the like.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrEmptyExpression        error = &Error{Kind: EmptyExpression}
	ErrBadNumericalExpression error = &Error{Kind: BadNumericalExpression}
	ErrUnknownFunction        error = &Error{Kind: UnknownFunction}
	ErrExpectedChar           error = &Error{Kind: ExpectedChar}
	ErrOutOfRange             error = &Error{Kind: OutOfRange}
	ErrTrailingGarbage        error = &Error{Kind: TrailingGarbage}
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column at which the error begins.
	Pos() int
}

var _ InputError = (*Error)(nil)

// ReportError writes a one-line description of err to w, in the form
// "message: text". It returns whether err was non-nil. Errors that are not and
// do not wrap an *Error are written using their Error method.
func ReportError(w io.Writer, err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "%s: %s\n", e.Message(), e.Text())
		return true
	}
	fmt.Fprintln(w, err)
	return true
}
