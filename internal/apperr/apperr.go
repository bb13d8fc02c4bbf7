package apperr

import (
	"errors"
	"fmt"
)

// Kind is the category of a failure. It decides the exit status and how
// the failure is reported to the user.
type Kind int

const (
	// KindUnknown is anything that did not come through a constructor here.
	KindUnknown Kind = iota
	// KindUsage covers bad arguments detected before any scan.
	KindUsage
	// KindInsufficientData means fewer than two candidates were found.
	KindInsufficientData
	// KindIO covers stat, open, and read failures.
	KindIO
	// KindGlob is a per-repository pattern failure. The locator logs and
	// skips these; they only surface when a caller asks for them.
	KindGlob
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindInsufficientData:
		return "insufficient-data"
	case KindIO:
		return "io"
	case KindGlob:
		return "glob"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is user-facing text; Op and Path
// give debugging context for I/O failures.
type Error struct {
	Kind    Kind
	Op      string
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Usage returns a usage error carrying a corrective message.
func Usage(message string) *Error {
	return &Error{Kind: KindUsage, Message: message}
}

// Insufficient returns an insufficient-data error.
func Insufficient(message string) *Error {
	return &Error{Kind: KindInsufficientData, Message: message}
}

// IO wraps a filesystem failure with the operation and path involved.
func IO(op, path string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// Glob wraps a pattern expansion failure for one repository.
func Glob(pattern string, err error) *Error {
	return &Error{Kind: KindGlob, Op: "expanding pattern", Path: pattern, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Exit statuses returned by ExitCode.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitInsufficient = 3
	ExitIO           = 4
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindUsage:
		return ExitUsage
	case KindInsufficientData:
		return ExitInsufficient
	case KindIO, KindGlob:
		return ExitIO
	default:
		return ExitFailure
	}
}
