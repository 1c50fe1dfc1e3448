// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics of the authentication flows
// and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login and reset outcomes used as label values.
const (
	OutcomeSuccess            = "success"
	OutcomeAdmin              = "admin"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInvalidToken       = "invalid_token"
	OutcomeForbidden          = "forbidden"
	OutcomeUnavailable        = "unavailable"
	OutcomeError              = "error"
)

// MetricsCollector is the recording side of [Collector], used by the HTTP
// handlers and the background workers.
type MetricsCollector interface {
	RecordLogin(outcome string)
	RecordResetRequest()
	RecordPasswordReset(outcome string)
	RecordTokensSwept(persistent, reset int64)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// Collector implements [MetricsCollector] with Prometheus counters.
type Collector struct {
	logins         *prometheus.CounterVec
	resetRequests  prometheus.Counter
	passwordResets *prometheus.CounterVec
	tokensSwept    *prometheus.CounterVec
	httpStatus     *prometheus.CounterVec
	latency        prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathkids_logins_total",
			Help: "Password login attempts by outcome.",
		}, []string{"outcome"}),
		resetRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mathkids_password_reset_requests_total",
			Help: "Accepted forgot-password requests.",
		}),
		passwordResets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathkids_password_resets_total",
			Help: "Password reset attempts by outcome.",
		}, []string{"outcome"}),
		tokensSwept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathkids_tokens_swept_total",
			Help: "Expired tokens deleted by the sweeper.",
		}, []string{"kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathkids_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mathkids_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.logins,
		c.resetRequests,
		c.passwordResets,
		c.tokensSwept,
		c.httpStatus,
		c.latency,
	)

	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordResetRequest() {
	c.resetRequests.Inc()
}

func (c *Collector) RecordPasswordReset(outcome string) {
	c.passwordResets.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordTokensSwept(persistent, reset int64) {
	c.tokensSwept.WithLabelValues("persistent").Add(float64(persistent))
	c.tokensSwept.WithLabelValues("reset").Add(float64(reset))
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.latency.Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every observation. It is used where no registry is wired.
type Nop struct{}

func (Nop) RecordLogin(string)                 {}
func (Nop) RecordResetRequest()                {}
func (Nop) RecordPasswordReset(string)         {}
func (Nop) RecordTokensSwept(int64, int64)     {}
func (Nop) RecordHTTPStatus(int)               {}
func (Nop) RecordRequestLatency(time.Duration) {}
