package courier

import (
	"time"

	"github.com/shopspring/decimal"
)

type CourierDB struct {
	ID        string
	Name      string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
