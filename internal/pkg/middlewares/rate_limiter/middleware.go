package rate_limiter

import (
	"net/http"
	"strconv"

	"marketplace/internal/pkg/apperr"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

const codeRateLimited apperr.Code = "RATE_LIMITED"

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteOf(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")
			RejectedTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, response.ErrorBody{
				Code:    codeRateLimited,
				Message: "rate limit exceeded, try again later",
			})
		})
	}
}
