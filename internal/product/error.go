package product

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrTooManyImages       = fmt.Errorf("no more than %d images per product upload", MaxImages)

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)

// ImageProcessingError reports an uploaded image that could not be decoded.
type ImageProcessingError struct {
	Index int
	Cause error
}

func (e *ImageProcessingError) Error() string {
	return fmt.Sprintf("failed to process image #%d: %v", e.Index+1, e.Cause)
}

func (e *ImageProcessingError) Unwrap() error {
	return e.Cause
}
