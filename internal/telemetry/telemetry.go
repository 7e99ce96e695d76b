// Package telemetry exposes Prometheus metrics for the media-extractor
// service: extraction outcomes, engine latency, and credential refreshes.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Extraction outcome labels.
const (
	OutcomeSuccess         = "success"
	OutcomeExtractionError = "extraction_error"
	OutcomeCredentialError = "credential_error"
)

// Metrics holds all media-extractor Prometheus metrics.
type Metrics struct {
	// ExtractionsTotal counts extraction requests by platform and outcome.
	ExtractionsTotal *prometheus.CounterVec
	// ExtractionDuration observes wall time per extraction request.
	ExtractionDuration prometheus.Histogram
	// FormatsReturned observes normalized format counts per successful request.
	FormatsReturned prometheus.Histogram
	// CredentialRefreshes counts credential artifact refreshes by platform and result.
	CredentialRefreshes *prometheus.CounterVec
}

// Provider wraps the service's telemetry.
type Provider struct {
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{Metrics: initMetrics()}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ExtractionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "media_extractor_extractions_total",
			Help: "Total extraction requests by platform and outcome",
		}, []string{"platform", "outcome"}),
		ExtractionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "media_extractor_extraction_duration_seconds",
			Help:    "Wall time per extraction request in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
		FormatsReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "media_extractor_formats_returned",
			Help:    "Normalized formats returned per successful extraction",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		CredentialRefreshes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "media_extractor_credential_refreshes_total",
			Help: "Credential artifact refreshes by platform and result",
		}, []string{"platform", "result"}),
	}
}

// RecordExtraction records one extraction request. Formats is only observed
// for successful outcomes.
func (m *Metrics) RecordExtraction(platform, outcome string, elapsed time.Duration, formats int) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(platform, outcome).Inc()
	m.ExtractionDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeSuccess {
		m.FormatsReturned.Observe(float64(formats))
	}
}

// RecordCredentialRefresh records one credential acquisition attempt.
func (m *Metrics) RecordCredentialRefresh(platform string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.CredentialRefreshes.WithLabelValues(platform, result).Inc()
}
