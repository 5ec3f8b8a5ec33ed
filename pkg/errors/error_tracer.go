package errors

import "github.com/pkg/errors"

// StackTracer is implemented by errors that carry a stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer decorates an error with a stack trace so the logger can emit
// it. Errors that already carry a trace keep their original one.
type ErrorTracer struct {
	message string
	err     error
}

// TracerFromError wraps err, capturing a stack trace at the call site unless
// err already carries one.
func TracerFromError(err error) *ErrorTracer {
	wrapped := err
	if _, ok := err.(StackTracer); !ok {
		wrapped = errors.WithStack(err)
	}
	return &ErrorTracer{
		message: err.Error(),
		err:     wrapped,
	}
}

func (e *ErrorTracer) Error() string {
	return e.message
}

func (e *ErrorTracer) Unwrap() error {
	return e.err
}

// StackTrace returns the underlying error's stack trace, if any.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if st, ok := e.err.(StackTracer); ok {
		return st.StackTrace()
	}
	return nil
}
