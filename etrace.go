// Package etrace implements an error wrapper which captures a
// backtrace upon creation and can carry an optional textual
// description of the error.
//
// The wrapper is generic over the underlying error kind, so any
// caller-defined value can be decorated with capture-time context:
//
//	if err := open(path); err != nil {
//		return etrace.Describe(err, "loading config")
//	}
//
// Whether a backtrace is actually recorded depends on the capture
// policy of the backtrace package, see its documentation.
package etrace

import (
	"fmt"
	"io"
	"strings"

	"github.com/hysios/etrace/backtrace"
)

// Error wraps an error kind together with a backtrace and an optional
// description. The kind and the backtrace are fixed at construction
// time; only the description can be replaced afterwards.
type Error[E any] struct {
	err   E
	desc  string
	trace *backtrace.Backtrace
}

// New wraps cause, capturing a backtrace at the call site. It never
// fails; when the capture policy is disabled the wrapper simply
// carries no trace.
func New[E any](cause E) *Error[E] {
	return &Error[E]{err: cause, trace: backtrace.Capture(1)}
}

// Describe wraps cause together with a description.
func Describe[E any](cause E, desc string) *Error[E] {
	return &Error[E]{err: cause, desc: desc, trace: backtrace.Capture(1)}
}

// Promote converts err into a wrapped error. A wrapper passes through
// unchanged so propagation sites never stack wrappers; any other error
// is wrapped with a fresh backtrace. A nil err yields nil.
func Promote(err error) *Error[error] {
	if err == nil {
		return nil
	}
	if w, ok := err.(*Error[error]); ok {
		return w
	}
	return &Error[error]{err: err, trace: backtrace.Capture(1)}
}

// WithDescription replaces the wrapper's description and returns the
// receiver for chaining.
func (e *Error[E]) WithDescription(desc string) *Error[E] {
	e.desc = desc
	return e
}

// WithDescriptionf replaces the wrapper's description with a formatted
// one and returns the receiver for chaining.
func (e *Error[E]) WithDescriptionf(format string, args ...any) *Error[E] {
	e.desc = fmt.Sprintf(format, args...)
	return e
}

// Err returns the wrapped error kind.
func (e *Error[E]) Err() E {
	return e.err
}

// Desc returns the description, empty when none was attached.
func (e *Error[E]) Desc() string {
	return e.desc
}

// Backtrace returns the backtrace captured at construction, or nil
// when the capture policy was disabled.
func (e *Error[E]) Backtrace() *backtrace.Backtrace {
	return e.trace
}

// Clone returns a copy of the wrapper. The captured backtrace is
// shared between the copies; it is resolved at most once.
func (e *Error[E]) Clone() *Error[E] {
	c := *e
	return &c
}

// Unwrap exposes the wrapped kind to errors.Is and errors.As when the
// kind itself is an error.
func (e *Error[E]) Unwrap() error {
	if cause, ok := any(e.err).(error); ok {
		return cause
	}
	return nil
}

// Error renders the wrapper for human consumption: the cause (per the
// build's display mode), the description when present, and the
// backtrace when one was captured.
func (e *Error[E]) Error() string {
	var sb strings.Builder
	sb.WriteString(formatCause(e.err))
	if e.desc != "" {
		fmt.Fprintf(&sb, " (%s)", e.desc)
	}
	e.writeTrace(&sb)
	return sb.String()
}

// Format implements fmt.Formatter.
//
//	%s, %v  the Error rendering
//	%+v     the diagnostic rendering: description (or the cause's
//	        debug form) followed by the backtrace
//	%q      the Error rendering, quoted
func (e *Error[E]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			io.WriteString(f, e.debugString())
			return
		}
		io.WriteString(f, e.Error())
	case 's':
		io.WriteString(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

func (e *Error[E]) debugString() string {
	var sb strings.Builder
	if e.desc != "" {
		sb.WriteString(e.desc)
	} else {
		fmt.Fprintf(&sb, "%#v", e.err)
	}
	e.writeTrace(&sb)
	return sb.String()
}

func (e *Error[E]) writeTrace(sb *strings.Builder) {
	if e.trace == nil {
		return
	}
	sb.WriteString("\n\nBacktrace:\n")
	sb.WriteString(e.trace.String())
}
