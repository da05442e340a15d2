package store

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a store failure so the gateway can map it to a response
// without parsing messages.
type Kind string

const (
	KindValidation  Kind = "validation_error"
	KindDuplicate   Kind = "duplicate_identifier"
	KindReferential Kind = "referential_error"
	KindNotFound    Kind = "not_found"
	KindBusy        Kind = "busy"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

func validationErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func duplicateErr(entity, id string) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("%s %q already exists", entity, id)}
}

func referentialErr(entity, id string) *Error {
	return &Error{Kind: KindReferential, Message: fmt.Sprintf("%s %q does not exist", entity, id)}
}

func notFoundErr(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

// wrapDB converts driver-level failures into the store taxonomy. SQLite
// reports write contention as a locked/busy error; that is retryable and must
// not be confused with a caller mistake.
func wrapDB(err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	msg := err.Error()
	if strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked") || strings.Contains(msg, "SQLITE_BUSY") {
		return &Error{Kind: KindBusy, Message: "datastore is busy, retry the operation", Err: err}
	}
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return &Error{Kind: KindDuplicate, Message: "identifier already exists", Err: err}
	}
	return err
}
