package order

import "marketplace/internal/pkg/apperr"

var (
	ErrNoItems            = apperr.New(apperr.CodeInvalidInput, "order must contain at least one item")
	ErrInvalidQuantity    = apperr.New(apperr.CodeInvalidInput, "item quantity must be between 1 and 1000")
	ErrTotalTooLarge      = apperr.New(apperr.CodeInvalidInput, "order total exceeds the allowed maximum")
	ErrInvalidID          = apperr.New(apperr.CodeInvalidInput, "invalid identifier")
	ErrAddressRequired    = apperr.New(apperr.CodeInvalidInput, "customer address is required for the order")
	ErrRestaurantInactive = apperr.New(apperr.CodeNotFound, "restaurant not found or currently closed")
)

func errMenuItemNotFound(id string) error {
	return apperr.Newf(apperr.CodeNotFound, "menu item %s does not belong to this restaurant", id)
}
