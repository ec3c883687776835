package category

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidCategoryName = errors.New("category name must be between 1 and 100 characters")

	// -- Resource State --
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has products")

	// -- Constants (External Systems) --
	PgForeignKeyViolation = "23503"
)
