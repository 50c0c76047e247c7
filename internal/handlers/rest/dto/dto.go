// Package dto holds the JSON shapes of the REST API. Money is a string with
// two decimals.
package dto

import "time"

type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type CreateOrderRequest struct {
	RestaurantID    string      `json:"restaurantId"`
	OrderItems      []OrderLine `json:"orderItems"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderItem struct {
	MenuItemID       string `json:"menuItemId"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	PriceAtOrderTime string `json:"priceAtOrderTime"`
}

type Party struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	RestaurantID    string      `json:"restaurantId"`
	CourierID       *string     `json:"courierId"`
	DeliveredBy     *string     `json:"deliveredBy,omitempty"`
	Items           []OrderItem `json:"items"`
	TotalAmount     string      `json:"totalAmount"`
	DeliveryFee     string      `json:"deliveryFee"`
	CustomerAddress string      `json:"customerAddress"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	Customer   *Party `json:"customer,omitempty"`
	Restaurant *Party `json:"restaurant,omitempty"`
	Courier    *Party `json:"courier,omitempty"`
}

type StatusHistoryEntry struct {
	EventID    string    `json:"eventId"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	OccurredAt time.Time `json:"occurredAt"`
}

type CourierBalance struct {
	CourierID string    `json:"courierId"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
