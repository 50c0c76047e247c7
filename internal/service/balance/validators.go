package balance

import "github.com/google/uuid"

func isValidCourierID(id string) bool {
	return uuid.Validate(id) == nil
}
