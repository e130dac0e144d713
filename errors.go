package uwptiles

import "errors"

// Sentinel errors for library operations.
var (
	// Source loading and decoding errors.
	ErrReadSource   = errors.New("failed to read source image")
	ErrEmptySource  = errors.New("source image is empty")
	ErrDecodeSource = errors.New("failed to decode source image")
	ErrNoSVGSize    = errors.New("svg has no viewBox, width or height")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output file")

	// Manifest validation errors.
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrInvalidSpec     = errors.New("invalid output spec")
)
