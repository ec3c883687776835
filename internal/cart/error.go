package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingSession = errors.New("no session id")

	// -- Resource State --
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
)
