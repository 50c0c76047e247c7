package order

import (
	"strings"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		RestaurantID:    o.RestaurantID,
		CourierID:       o.CourierID,
		DeliveredBy:     o.DeliveredBy,
		Items:           ToDomainItems(items),
		TotalAmount:     o.TotalAmount,
		DeliveryFee:     o.DeliveryFee,
		CustomerAddress: o.CustomerAddress,
		Status:          entities.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToDomainItems(items []OrderItemDB) []entities.OrderItem {
	result := make([]entities.OrderItem, len(items))
	for i, it := range items {
		result[i] = entities.OrderItem{
			MenuItemID:       it.MenuItemID,
			Name:             it.Name,
			Quantity:         it.Quantity,
			PriceAtOrderTime: it.PriceAtOrderTime,
		}
	}
	return result
}

// ToDomainParty returns nil when the joined row was absent.
func ToDomainParty(p PartyDB) *entities.Party {
	if p.ID == nil {
		return nil
	}

	parts := make([]string, 0, 3)
	for _, s := range []*string{p.Detailed, p.District, p.Province} {
		if v := strings.TrimSpace(pointer.GetString(s)); v != "" {
			parts = append(parts, v)
		}
	}

	return &entities.Party{
		ID:      *p.ID,
		Name:    pointer.GetString(p.Name),
		Email:   pointer.GetString(p.Email),
		Address: strings.Join(parts, ", "),
	}
}

// viewParties selects which joined identities a listing exposes.
type viewParties struct {
	customer   bool
	restaurant bool
	courier    bool
}

func ToDomainView(v *OrderViewDB, items []OrderItemDB, parties viewParties) entities.OrderView {
	view := entities.OrderView{Order: *ToDomain(&v.Order, items)}
	if parties.customer {
		view.Customer = ToDomainParty(v.Customer)
	}
	if parties.restaurant {
		view.Restaurant = ToDomainParty(v.Restaurant)
	}
	if parties.courier {
		view.Courier = ToDomainParty(v.Courier)
	}
	return view
}
