package order

import (
	"strings"

	"marketplace/internal/entities"
)

// addressRule formats a profile address if it has the fields the rule needs.
type addressRule func(a entities.AddressFields) (string, bool)

// addressRules are tried in order; the first match wins.
var addressRules = []addressRule{
	func(a entities.AddressFields) (string, bool) {
		if a.Detailed == "" || a.District == "" || a.Province == "" {
			return "", false
		}
		return a.Detailed + ", " + a.District + "/" + a.Province, true
	},
	func(a entities.AddressFields) (string, bool) {
		if a.District == "" || a.Province == "" {
			return "", false
		}
		return a.District + "/" + a.Province, true
	},
	func(a entities.AddressFields) (string, bool) {
		if a.Detailed == "" {
			return "", false
		}
		return a.Detailed, true
	},
}

func trimmed(a entities.AddressFields) entities.AddressFields {
	return entities.AddressFields{
		Detailed: strings.TrimSpace(a.Detailed),
		District: strings.TrimSpace(a.District),
		Province: strings.TrimSpace(a.Province),
	}
}

// composeAddress builds the delivery address from the customer profile.
func composeAddress(profile entities.AddressFields) (string, error) {
	profile = trimmed(profile)
	for _, rule := range addressRules {
		if s, ok := rule(profile); ok {
			return s, nil
		}
	}
	return "", ErrAddressRequired
}
