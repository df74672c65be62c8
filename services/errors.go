package services

import (
	"fmt"

	"sales-report/chart"
)

// ErrNoData reports an empty summary. It is not a hard failure: callers show
// a "no data" message and skip the chart.
var ErrNoData = chart.ErrNoData

// StoreAccessError is returned when the store cannot be opened or a read or
// write against it fails. The store is left in its last committed state.
type StoreAccessError struct {
	Op  string
	Err error
}

func (e *StoreAccessError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreAccessError) Unwrap() error { return e.Err }

// RenderError is returned when the chart cannot be written to Path.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// InvalidRecordError is returned by Seed for input that fails validation.
// Index is the position of the offending record.
type InvalidRecordError struct {
	Index  int
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid sale record %d: %s", e.Index, e.Reason)
}
