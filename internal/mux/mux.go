package mux

import (
	"context"
	"handstrength-server/internal/config"
	"handstrength-server/pkg/poker"
	"net/http"
	"time"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    muxConfig
	version   string
	evaluator *poker.Evaluator
	metrics   *metrics
}

type muxConfig struct {
	// maxHands is the maximum number of hands that can be ranked in one request
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		evaluator: cfg.Evaluator(),
		metrics:   newMetrics(),
		config: muxConfig{
			maxHands: cfg.MaxHands,
		},
	}

	this.Router.Use(this.requestIDMiddleware)
	this.Router.Use(this.metricsMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.HandlerFor(this.metrics.registry, promhttp.HandlerOpts{}))
		r.Methods(http.MethodPost).Path("/hand/evaluate").Handler(this.postHandEvaluate())
		r.Methods(http.MethodPost).Path("/hand/rank").Handler(this.postHandRank())
	}

	return this
}

// requestIDMiddleware tags every request with an ID, reusing the one sent by the client if there is one
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func (m *Mux) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if cr := gmux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		m.metrics.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// logger returns a log entry scoped to the request
func logger(r *http.Request) *logrus.Entry {
	entry := logrus.WithField("remoteAddr", remoteAddr(r))
	if id, ok := r.Context().Value(ctxRequestIDKey).(string); ok {
		entry = entry.WithField("requestID", id)
	}

	return entry
}
