package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/common"
	apperrors "github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/errors"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/ratelimit"
)

// RateLimit enforces a per-endpoint, per-client-IP request budget. Runs after
// RealIP so RemoteAddr reflects the originating client.
func RateLimit(limiter *ratelimit.IPRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	errs := apperrors.NewErrorHandler(logger, false)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			key := ip + "|" + r.URL.Path

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("Rate limiter failure", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("request_id", common.ExtractRequestID(r)),
				)
				errs.Handle(w, r, apperrors.NewRateLimitError(limiter.Limit(), "minute"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
