package entities

import "marketplace/internal/pkg/apperr"

// Storage-level errors shared by every service that reads orders and the
// collaborator tables.
var (
	ErrOrderNotFound      = apperr.New(apperr.CodeNotFound, "order not found")
	ErrOrderNotClaimable  = apperr.New(apperr.CodeConflict, "order is no longer available for delivery")
	ErrOrderStatusChanged = apperr.New(apperr.CodeConflict, "order status changed concurrently, retry")

	ErrCourierNotFound    = apperr.New(apperr.CodeNotFound, "courier not found")
	ErrRestaurantNotFound = apperr.New(apperr.CodeNotFound, "restaurant not found")
	ErrCustomerNotFound   = apperr.New(apperr.CodeNotFound, "customer not found")

	ErrValueOutOfRange = apperr.New(apperr.CodeInvalidInput, "order amount or quantity is out of range")
)
