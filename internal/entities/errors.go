package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")

	// ErrValidation is the parent of every cart/customer rejection.
	ErrValidation        = errors.New("validation failed")
	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrProductNotFound   = fmt.Errorf("%w: product not found", ErrValidation)
	ErrProductInactive   = fmt.Errorf("%w: product is inactive", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrValidation)
	ErrFlashSaleNotFound = fmt.Errorf("%w: flash sale product not found", ErrValidation)
	ErrFlashSaleInactive = fmt.Errorf("%w: flash sale is not running", ErrValidation)

	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrConcurrentUpdate means the order left the expected state between read and write.
	ErrConcurrentUpdate = errors.New("order was modified concurrently")

	ErrReferenceNotFound = errors.New("payment reference not found")

	// ErrReconciliationConflict marks a gateway result arriving for an order whose
	// payment is already settled. It is logged, never returned to clients.
	ErrReconciliationConflict = errors.New("reconciliation conflict")

	ErrPersistence = errors.New("persistence failure")
)
