package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reefscout_http_request_duration_seconds",
		Help:    "HTTP request latency by method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	chatCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reefscout_chat_completions_total",
		Help: "Chat completions served, by model.",
	}, []string{"model"})

	chatTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reefscout_chat_tokens_total",
		Help: "Tokens consumed by chat completions, by direction.",
	}, []string{"direction"})

	chatCostUSD = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reefscout_chat_cost_usd_total",
		Help: "Estimated spend on chat completions in USD.",
	})
)

func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// instrumentRequests records request latency and status. The chi wrapper
// keeps Hijacker support intact for WebSocket upgrades.
func instrumentRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		requestDuration.WithLabelValues(r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// ObserveCompletion records one chat completion plus its token usage and
// estimated cost. Wired into the assistant engine's OnCompletion hook.
func ObserveCompletion(model string, inputTokens, outputTokens int, costUSD float64) {
	chatCompletions.WithLabelValues(model).Inc()
	chatTokens.WithLabelValues("input").Add(float64(inputTokens))
	chatTokens.WithLabelValues("output").Add(float64(outputTokens))
	chatCostUSD.Add(costUSD)
}
