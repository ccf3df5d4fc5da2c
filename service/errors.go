package service

import (
	"errors"
	"fmt"

	"robotaxi-economics/domain"
)

var (
	// ErrInvalidAssumption marks a field that violates its invariant.
	ErrInvalidAssumption = errors.New("invalid assumption")

	// ErrDomain marks an arithmetic domain error such as zero utilization.
	ErrDomain = errors.New("domain error")

	ErrInvalidSweep  = errors.New("invalid sweep")
	ErrNoIRR         = errors.New("no internal rate of return")
	ErrUnknownPreset = errors.New("unknown preset")
)

// AssumptionError reports which field was rejected and why.
type AssumptionError struct {
	Field  domain.Field
	Reason string
}

func (e *AssumptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *AssumptionError) Unwrap() error { return ErrInvalidAssumption }

func invalid(field domain.Field, format string, args ...any) error {
	return &AssumptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CellError is returned by a sweep when a single grid cell fails.
type CellError struct {
	Row int
	Col int
	X   float64
	Y   float64
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell [%d][%d] (x=%v, y=%v): %v", e.Row, e.Col, e.X, e.Y, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
