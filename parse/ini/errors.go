package ini

import (
	"errors"
	"fmt"
)

// Kind classifies a failure reported by a Document.
type Kind string

const (
	// KindResource means the input could not be obtained.
	KindResource Kind = "resource"
	// KindTruncated means a header or key ran to the end of input.
	KindTruncated Kind = "truncated"
	// KindLookup means a section or key was not found or a name was omitted.
	KindLookup Kind = "lookup"
	// KindConversion means a value could not be converted to the requested type.
	KindConversion Kind = "conversion"
)

var (
	ErrRead            = errors.New("ini: read failed")
	ErrTruncated       = errors.New("ini: input truncated")
	ErrMissingName     = errors.New("ini: name is required")
	ErrSectionNotFound = errors.New("ini: section not found")
	ErrKeyNotFound     = errors.New("ini: key not found")
	ErrNoDigits        = errors.New("ini: no digits")
	ErrRange           = errors.New("ini: value out of range")
	ErrInvalidBool     = errors.New("ini: invalid bool")
)

// Error carries the failure kind, the sentinel cause and, when error
// tracking is enabled, the formatted diagnostic also stored in the
// document's error slot.
type Error struct {
	Kind Kind
	Err  error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return "ini: " + e.Msg
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// fail records a failure in the error slot and returns it.
func (d *Document) fail(kind Kind, cause error, format string, args ...any) error {
	e := &Error{Kind: kind, Err: cause}
	if !d.opts.DisableErrors {
		e.Msg = fmt.Sprintf(format, args...)
		d.err = e.Msg
	}
	return e
}

func (d *Document) clearError() {
	d.err = ""
}

// LastError returns the pending diagnostic, or "" after a successful call.
func (d *Document) LastError() string { return d.err }

// HasError reports whether the last fallible call failed. It is always false
// when error tracking is disabled.
func (d *Document) HasError() bool { return d.err != "" }
