package gridkit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by table, item and column operations.
// Callers can match them with errors.Is; most are wrapped with the
// offending value for context.
var (
	// ErrDisposed is returned when an operation is attempted on a
	// disposed table, item or column.
	ErrDisposed = errors.New("gridkit: widget is disposed")

	// ErrOutOfRange is returned when an index falls outside the
	// valid range for the operation.
	ErrOutOfRange = errors.New("gridkit: index out of range")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("gridkit: nil argument")

	// ErrInvalidArgument is returned when an argument is malformed,
	// such as a column order that is not a permutation.
	ErrInvalidArgument = errors.New("gridkit: invalid argument")
)

func errOutOfRange(index, count int) error {
	return fmt.Errorf("%w: index %d with count %d", ErrOutOfRange, index, count)
}
