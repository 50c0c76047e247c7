package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Courier struct {
	ID        string
	Name      string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
