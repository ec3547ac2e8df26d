package handler

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"poolflow-gateway/internal/gateway/config"
	"poolflow-gateway/internal/gateway/monitor"
	"poolflow-gateway/pkg/logger"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// WithCORS 只放行配置里的来源，浏览器之外的调用不受影响
func WithCORS(origins []string, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)
		}

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// WithObservability 给每个请求开 span、记录时延指标和访问日志
func WithObservability(tl *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := logger.StartSpanWithRequest(r, "gateway", r.URL.Path)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))
			elapsed := time.Since(start)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			monitor.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
			monitor.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			logger.WithTrace(ctx, tl).Debug("request served",
				zap.String("route", route),
				zap.Int("status", rec.status),
				zap.Duration("elapsed", elapsed))
		})
	}
}

// WithRateLimit 按来源 IP 做令牌桶限流
func WithRateLimit(cfg config.RateLimitConfig) mux.MiddlewareFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters[ip]; ok {
			return l
		}
		// 表太大时整个重建，省得做逐条过期
		if len(limiters) > 10000 {
			limiters = make(map[string]*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
		limiters[ip] = l
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiterFor(ip).Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
