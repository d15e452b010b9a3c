// Package apperr defines the closed set of failure kinds the tool can
// report and their mapping to process exit codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	MissingArguments
	InvalidStartDate
	InvalidEndDate
	InvalidInterval
	StartAfterEnd
	QueryDocumentNotFound
	ChunkQueryFailed
	TransformFailed
)

func (k Kind) String() string {
	switch k {
	case MissingArguments:
		return "missing arguments"
	case InvalidStartDate:
		return "invalid start date"
	case InvalidEndDate:
		return "invalid end date"
	case InvalidInterval:
		return "invalid interval"
	case StartAfterEnd:
		return "start date after end date"
	case QueryDocumentNotFound:
		return "query document not found"
	case ChunkQueryFailed:
		return "chunk query failed"
	case TransformFailed:
		return "transform failed"
	default:
		return "unknown error"
	}
}

// Error carries a Kind so callers can branch on the failure class without
// parsing messages.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the Kind carried by err, or Unknown for untyped errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

var exitCodes = map[Kind]int{
	MissingArguments:      2,
	InvalidStartDate:      3,
	InvalidEndDate:        4,
	InvalidInterval:       5,
	StartAfterEnd:         6,
	QueryDocumentNotFound: 7,
	ChunkQueryFailed:      8,
	TransformFailed:       9,
}

// ExitCode maps err to the process exit code: 0 for nil, a distinct code
// per Kind, and 1 for anything untyped.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[KindOf(err)]; ok {
		return code
	}
	return 1
}
