package delivery

import "github.com/google/uuid"

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}
