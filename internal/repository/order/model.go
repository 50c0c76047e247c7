package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID              string
	CustomerID      string
	RestaurantID    string
	CourierID       *string
	DeliveredBy     *string
	TotalAmount     decimal.Decimal
	DeliveryFee     decimal.Decimal
	CustomerAddress string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	OrderID          string
	Position         int
	MenuItemID       string
	Name             string
	Quantity         int
	PriceAtOrderTime decimal.Decimal
}

// PartyDB holds the columns of a LEFT JOINed party; all of them are NULL
// when the join found nothing.
type PartyDB struct {
	ID       *string
	Name     *string
	Email    *string
	Detailed *string
	District *string
	Province *string
}

type OrderViewDB struct {
	Order      OrderDB
	Customer   PartyDB
	Restaurant PartyDB
	Courier    PartyDB
}
