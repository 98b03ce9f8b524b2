package errors

import (
	"errors"
	"fmt"
)

const (
	ExitOK       = 0
	ExitInternal = 1
)

// Exception is a kind of failure the tracker reports to its caller. Each kind
// maps to the exit code the command line returns for it.
type Exception struct {
	Message  string
	ExitCode int
	Fatal    bool
}

func (e *Exception) Error() string {
	return e.Message
}

// OpError records which operation failed, the failure kind and the cause.
// errors.Is matches both the kind and anything in the cause chain.
type OpError struct {
	Op   string
	Kind *Exception
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind.Message, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Wrap tags err with kind. A nil err still yields an error so callers can
// report kinds that have no underlying cause (e.g. a missing row).
func Wrap(kind *Exception, op string, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}

// Kind returns the first Exception found in err's chain, or nil.
func Kind(err error) *Exception {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if kind := Kind(err); kind != nil {
		return kind.ExitCode
	}
	return ExitInternal
}

// IsFatal reports whether err must abort the process.
func IsFatal(err error) bool {
	kind := Kind(err)
	return kind != nil && kind.Fatal
}
