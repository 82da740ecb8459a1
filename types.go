package bwsort

import "context"

// Sorter is the interface that bwsort sorters satisfy.
// It provides a single Sort method that performs the complete sorting operation
// within the provided context, allowing for cancellation and timeout control.
type Sorter interface {
	// Sort reads from the input channel, sorts the lines and delivers them
	// to the output channel. The operation can be cancelled or timed out
	// using the provided context.
	Sort(context.Context)
}

// CompareLines is a function type for comparing two prepared lines.
// Returns a negative integer if a should be ordered before b, zero if they are
// equal, and a positive integer if a should be ordered after b. It reports
// internal faults by panicking.
type CompareLines func(a, b *Line) int

var _ Sorter = (*LineSorter)(nil)
