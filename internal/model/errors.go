package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid tax configuration")
	ErrInvalidAmount  = errors.New("amount must be finite and non-negative")
	ErrYearNotFound   = errors.New("year not available")
	ErrNotImplemented = errors.New("year not yet implemented")
	ErrInvalidTable   = errors.New("invalid rate table")
	ErrNoPolynomial   = errors.New("no polynomial constants published for year")
	ErrNoConvergence  = errors.New("solver did not converge")
)

// ConfigError reports a TaxConfig field that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s, got %v", ErrInvalidConfig, e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// DataError is returned by the rate-table provider. Err is one of
// ErrYearNotFound, ErrNotImplemented or a wrapped ErrInvalidTable.
type DataError struct {
	Kind string
	Year int
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s data for %d: %v", e.Kind, e.Year, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

type ConvergenceError struct {
	Target     float64
	Iterations int
	Last       float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: target net %.2f, %d iterations, last salary %.2f",
		ErrNoConvergence, e.Target, e.Iterations, e.Last)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }
