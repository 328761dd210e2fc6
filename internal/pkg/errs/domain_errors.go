package errs

import "errors"

// Sentinels shared by the usecase and handler layers
var (
	// Hand-off errors
	ErrSelectionNotFound = errors.New("booking selection not found")
	ErrOrderNotFound     = errors.New("order details not found")

	// Checkout errors
	ErrSubmitInProgress  = errors.New("checkout submission already in progress")
	ErrValidationFailed  = errors.New("checkout form validation failed")

	// Orders admin errors
	ErrInvalidOrder      = errors.New("invalid order")
	ErrAdminUnauthorized = errors.New("admin key required")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
	ErrBackendUnavailable   = errors.New("backend unavailable")
)
