package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrEmptyCatalog  = fmt.Errorf("catalog is empty")
	ErrTrackNotFound = fmt.Errorf("track not found")

	// Player errors
	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrUnknownVariant     = fmt.Errorf("unknown player variant")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
