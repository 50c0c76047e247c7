package outbox

import "errors"

var ErrInvalidBatch = errors.New("outbox batch size must be positive")
