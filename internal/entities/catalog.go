package entities

import "github.com/shopspring/decimal"

type AddressFields struct {
	Detailed string
	District string
	Province string
}

type Restaurant struct {
	ID       string
	Name     string
	IsActive bool
	Address  AddressFields
}

type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Price        decimal.Decimal
}

type Customer struct {
	ID      string
	Name    string
	Email   string
	Address AddressFields
}
