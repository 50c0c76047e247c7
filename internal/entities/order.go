package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderConfirmed      OrderStatus = "Confirmed"
	OrderPreparing      OrderStatus = "Preparing"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivering     OrderStatus = "Delivering"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderOutForDelivery,
	OrderDelivering,
	OrderDelivered,
	OrderCancelled,
}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	for _, st := range orderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// DeliveryFee is charged on every order and credited to the courier on delivery.
var DeliveryFee = decimal.RequireFromString("50.00")

// MaxMoneyAmount is the largest amount a NUMERIC(12,2) column holds.
var MaxMoneyAmount = decimal.RequireFromString("9999999999.99")

type OrderItem struct {
	MenuItemID       string
	Name             string
	Quantity         int
	PriceAtOrderTime decimal.Decimal
}

type Order struct {
	ID              string
	CustomerID      string
	RestaurantID    string
	CourierID       *string
	DeliveredBy     *string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	DeliveryFee     decimal.Decimal
	CustomerAddress string
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAssignedTo reports whether courierID currently holds the delivery.
func (o *Order) IsAssignedTo(courierID string) bool {
	return o.CourierID != nil && *o.CourierID == courierID
}

// OrderDraft is a priced, validated order that has not been stored yet.
type OrderDraft struct {
	CustomerID      string
	RestaurantID    string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	DeliveryFee     decimal.Decimal
	CustomerAddress string
}

// Party is the identity summary attached to listing views.
type Party struct {
	ID      string
	Name    string
	Email   string
	Address string
}

// OrderView is an order with the identities a given listing shows.
type OrderView struct {
	Order
	Customer   *Party
	Restaurant *Party
	Courier    *Party
}

// StatusChange is a conditional status write. The store applies it only
// while the order is still in From.
type StatusChange struct {
	OrderID      string
	From         OrderStatus
	To           OrderStatus
	ClearCourier bool
	DeliveredBy  *string
}
