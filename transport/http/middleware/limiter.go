package middleware

import (
	"errors"
	"net"
	"net/http"
	"pureheart/shared"
	"pureheart/shared/cache"
	"pureheart/shared/constant"
	"pureheart/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	bucketRead  = "read"
	bucketWrite = "write"
)

// RateLimit counts requests per client in fixed windows. Reads and writes are
// counted separately so browsing the floor plan cannot starve booking attempts.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			settings := a.config.App.RateLimiter
			if !settings.Enable {
				next.ServeHTTP(w, r)

				return
			}

			bucket, limit := bucketRead, settings.MaxRequests
			if isWrite(r.Method) {
				bucket = bucketWrite

				if settings.MaxWriteRequests > 0 {
					limit = settings.MaxWriteRequests
				}
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, bucket, clientIP(r), userAgent(r))

			var count int

			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Msg("rate limiter unavailable, request let through")
				next.ServeHTTP(w, r)

				return
			}

			if count > limit {
				w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(settings.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), cacheKey, count, settings.WindowSeconds); err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, request let through")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(settings.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
