package squircle

import "errors"

// Errors returned by Source and by parameter parsing.
var (
	// ErrNotRendered is returned by Source.Output when no finalized command
	// list is available: no update has succeeded yet, or the last rebuild
	// failed after the previous output was released.
	ErrNotRendered = errors.New("squircle: no rendered output")

	// ErrClosed is returned by Source methods after Close.
	ErrClosed = errors.New("squircle: source closed")

	// ErrUnknownVariant is returned for a Variant outside the known set.
	ErrUnknownVariant = errors.New("squircle: unknown variant")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("squircle: invalid color")
)
