package order

import "github.com/google/uuid"

// MaxItemQuantity bounds a single order line.
const MaxItemQuantity = 1000

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func validateLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrNoItems
	}
	for _, l := range lines {
		if l.Quantity < 1 || l.Quantity > MaxItemQuantity {
			return ErrInvalidQuantity
		}
		if !isValidID(l.MenuItemID) {
			return errMenuItemNotFound(l.MenuItemID)
		}
	}
	return nil
}
