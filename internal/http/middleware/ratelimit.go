package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/http/ban"
	rl "github.com/rogerio-castellano/commerce-dashboard/internal/http/rate_limiter"
	"go.uber.org/zap"
)

type RateLimitOptions struct {
	MaxStrikes int64
	StrikeTTL  time.Duration
	BanTTL     time.Duration
}

// RateLimit applies a token bucket per client address. Every refused request is a
// strike; MaxStrikes strikes within StrikeTTL ban the client for BanTTL.
// Ban store failures let the request through.
func RateLimit(visitors *rl.Visitors, store ban.Store, opts RateLimitOptions, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			client := clientIP(r)

			banned, err := store.IsBanned(ctx, client)
			if err != nil {
				log.Warn("ban lookup failed", zap.String("client", client), zap.Error(err))
			}
			if banned {
				rateLimitedTotal.WithLabelValues("banned").Inc()
				http.Error(w, "too many requests, temporarily banned", http.StatusForbidden)
				return
			}

			if visitors.GetVisitor(client).Allow() {
				next.ServeHTTP(w, r)
				return
			}

			rateLimitedTotal.WithLabelValues("throttled").Inc()
			strikes, err := store.Strike(ctx, client, opts.StrikeTTL)
			if err != nil {
				log.Warn("strike not recorded", zap.String("client", client), zap.Error(err))
			} else if strikes >= opts.MaxStrikes {
				entry := ban.BanLogEntry{Target: client, Route: r.URL.Path, Strikes: strikes, Time: time.Now()}
				if err := store.Ban(ctx, entry, opts.BanTTL); err != nil {
					log.Warn("ban not recorded", zap.String("client", client), zap.Error(err))
				} else {
					log.Warn("client banned", zap.String("client", client), zap.String("route", r.URL.Path), zap.Int64("strikes", strikes))
				}
			}

			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
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
