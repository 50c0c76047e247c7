package lifecycle

import "marketplace/internal/entities"

// Rule lists the statuses reachable from one state and the only role allowed
// to move the order there.
type Rule struct {
	Role entities.Role
	Next []entities.OrderStatus
}

func (r Rule) allows(to entities.OrderStatus) bool {
	for _, s := range r.Next {
		if s == to {
			return true
		}
	}
	return false
}

// Table is the complete lifecycle. Terminal states have no entry. The
// Out for Delivery -> Delivering step is a claim and is not listed.
var Table = map[entities.OrderStatus]Rule{
	entities.OrderPending: {
		Role: entities.RoleRestaurant,
		Next: []entities.OrderStatus{entities.OrderConfirmed, entities.OrderCancelled},
	},
	entities.OrderConfirmed: {
		Role: entities.RoleRestaurant,
		Next: []entities.OrderStatus{entities.OrderPreparing, entities.OrderCancelled},
	},
	entities.OrderPreparing: {
		Role: entities.RoleRestaurant,
		Next: []entities.OrderStatus{entities.OrderOutForDelivery},
	},
	entities.OrderOutForDelivery: {
		Role: entities.RoleRestaurant,
		Next: []entities.OrderStatus{entities.OrderCancelled},
	},
	entities.OrderDelivering: {
		Role: entities.RoleCourier,
		Next: []entities.OrderStatus{entities.OrderDelivered},
	},
}
