// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_api_requests_total",
		Help: "Requests by path and outcome.",
	}, []string{"path", "outcome"})

	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_api_rate_limit_rejections_total",
		Help: "Requests rejected by the rate limiter, by path.",
	}, []string{"path"})

	TextsAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_api_texts_analyzed_total",
		Help: "Successfully analyzed texts by sentiment label.",
	}, []string{"sentiment"})
)
