package order

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrInvalidOrderInput = errors.New("invalid order input")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrNoItems           = errors.New("cart has no items to order")
	ErrNoValidItems      = errors.New("order must keep at least one item with quantity above zero")

	// -- Resource State --
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderItemNotFound       = errors.New("order item not found")
	ErrInvalidStatusTransition = errors.New("order status change not allowed")
)
