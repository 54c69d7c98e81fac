package grid

import "errors"

var (
	// ErrInvalidDigit indicates a non-decimal character in digit-only input.
	ErrInvalidDigit = errors.New("grid: invalid digit")
	// ErrMissingEndpoint is the panic value when a search is requested from a
	// PathFinder whose start or end was never resolved.
	ErrMissingEndpoint = errors.New("grid: start and end coordinates must be set")
	// ErrBadCellWidth is the panic value for a printer cell width below 1.
	ErrBadCellWidth = errors.New("grid: cell width must be at least 1")
)
