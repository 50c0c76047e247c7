package dto

import (
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FromOrder(o *entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			MenuItemID:       it.MenuItemID,
			Name:             it.Name,
			Quantity:         it.Quantity,
			PriceAtOrderTime: money(it.PriceAtOrderTime),
		})
	}

	return Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		RestaurantID:    o.RestaurantID,
		CourierID:       o.CourierID,
		DeliveredBy:     o.DeliveredBy,
		Items:           items,
		TotalAmount:     money(o.TotalAmount),
		DeliveryFee:     money(o.DeliveryFee),
		CustomerAddress: o.CustomerAddress,
		Status:          o.Status.String(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromParty(p *entities.Party) *Party {
	if p == nil {
		return nil
	}
	return &Party{ID: p.ID, Name: p.Name, Email: p.Email, Address: p.Address}
}

func FromOrderView(v entities.OrderView) Order {
	out := FromOrder(&v.Order)
	out.Customer = fromParty(v.Customer)
	out.Restaurant = fromParty(v.Restaurant)
	out.Courier = fromParty(v.Courier)
	return out
}

// FromOrderViews never returns nil so empty listings encode as [].
func FromOrderViews(views []entities.OrderView) []Order {
	out := make([]Order, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}

func FromHistory(entries []entities.StatusHistoryEntry) []StatusHistoryEntry {
	out := make([]StatusHistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusHistoryEntry{
			EventID:    e.EventID,
			Status:     e.Status.String(),
			ActorID:    e.ActorID,
			ActorRole:  e.ActorRole.String(),
			OccurredAt: e.OccurredAt,
		})
	}
	return out
}

func FromCourierBalance(c *entities.Courier) CourierBalance {
	return CourierBalance{
		CourierID: c.ID,
		Balance:   money(c.Balance),
		UpdatedAt: c.UpdatedAt,
	}
}
