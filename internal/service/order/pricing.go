package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type OrderLineInput struct {
	MenuItemID string
	Quantity   int
}

type CreateOrderInput struct {
	CustomerID   string
	RestaurantID string
	Items        []OrderLineInput
	// Address overrides the profile address when non-blank.
	Address string
}

// BuildDraft validates the request against the catalog and prices it. It
// reads only; nothing is written.
func (o *Order) BuildDraft(ctx context.Context, in CreateOrderInput) (*entities.OrderDraft, error) {
	if err := validateLines(in.Items); err != nil {
		return nil, err
	}
	if !isValidID(in.CustomerID) {
		return nil, ErrInvalidID
	}
	if !isValidID(in.RestaurantID) {
		return nil, ErrRestaurantInactive
	}

	restaurant, err := o.catalog.GetRestaurant(ctx, in.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	if !restaurant.IsActive {
		return nil, ErrRestaurantInactive
	}

	ids := make([]string, 0, len(in.Items))
	for _, l := range in.Items {
		ids = append(ids, l.MenuItemID)
	}
	menu, err := o.catalog.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, l := range in.Items {
		mi, ok := menu[l.MenuItemID]
		if !ok || mi.RestaurantID != in.RestaurantID {
			return nil, errMenuItemNotFound(l.MenuItemID)
		}

		items = append(items, entities.OrderItem{
			MenuItemID:       mi.ID,
			Name:             mi.Name,
			Quantity:         l.Quantity,
			PriceAtOrderTime: mi.Price,
		})
		subtotal = subtotal.Add(mi.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	address, err := o.customerAddress(ctx, in)
	if err != nil {
		return nil, err
	}

	fee := entities.DeliveryFee
	total := subtotal.Add(fee)
	if total.GreaterThan(entities.MaxMoneyAmount) {
		return nil, ErrTotalTooLarge
	}

	return &entities.OrderDraft{
		CustomerID:      in.CustomerID,
		RestaurantID:    in.RestaurantID,
		Items:           items,
		TotalAmount:     total,
		DeliveryFee:     fee,
		CustomerAddress: address,
	}, nil
}

func (o *Order) customerAddress(ctx context.Context, in CreateOrderInput) (string, error) {
	if explicit := strings.TrimSpace(in.Address); explicit != "" {
		return explicit, nil
	}

	customer, err := o.catalog.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return "", fmt.Errorf("get customer: %w", err)
	}
	return composeAddress(customer.Address)
}
