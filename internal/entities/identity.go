package entities

import "strings"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleCourier    Role = "courier"
)

// roleAliases maps token role names onto roles; "delivery" is what older
// tokens carry for couriers.
var roleAliases = map[string]Role{
	"customer":   RoleCustomer,
	"restaurant": RoleRestaurant,
	"courier":    RoleCourier,
	"delivery":   RoleCourier,
}

func ParseRole(s string) (Role, bool) {
	r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated caller.
type Identity struct {
	ID   string
	Role Role
}
