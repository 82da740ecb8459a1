package bwstring

import (
	"fmt"
)

// CollationFault reports an internal-consistency violation found while
// collating composite keys. It is raised with panic: the operands were built
// wrongly upstream and no ordering can be trusted.
type CollationFault struct {
	// Pos is the code unit position, relative to the comparison offset.
	Pos int
	// Reason describes the violated condition.
	Reason string
}

func (f *CollationFault) Error() string {
	return fmt.Sprintf("bwstring: collation fault at unit %d: %s", f.Pos, f.Reason)
}

// ModeError reports a string used with an Env, or another string, of a
// different encoding mode. It is raised with panic.
type ModeError struct {
	Want Mode
	Got  Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("bwstring: mode mismatch: want %s, got %s", e.Want, e.Got)
}

// WriteError wraps a failure of the output stream.
type WriteError struct {
	// Err is the underlying stream or encoding error.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("bwstring: write: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
