package rate_limiter

import "marketplace/pkg/logger"

// Limiter admits or rejects one request; token_bucket.TokenBucket is the
// production implementation.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
