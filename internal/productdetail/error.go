package productdetail

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidDetail = errors.New("invalid product detail")
	ErrNoDetails     = errors.New("no product details given")

	// -- Resource State --
	ErrDetailNotFound = errors.New("product detail not found")
)

// BulkInsertError means a batch of details was rejected as a whole.
type BulkInsertError struct {
	Cause error
}

func (e *BulkInsertError) Error() string {
	return "failed to add product details: " + e.Cause.Error()
}

func (e *BulkInsertError) Unwrap() error {
	return e.Cause
}
