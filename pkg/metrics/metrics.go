// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	combinations        prometheus.CounterVec
	validConfigurations prometheus.CounterVec
	rejectedReasons     prometheus.CounterVec
	searchElapsedTime   prometheus.HistogramVec
	providerElapsedTime prometheus.HistogramVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	combinations := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_partyfinder_combinations_total",
			Help: "A counter of job combinations enumerated by party size",
		}, []string{"party_size"})

	validConfigurations := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_partyfinder_valid_configurations_total",
			Help: "A counter of job combinations that passed validation by party size",
		}, []string{"party_size"})

	rejectedReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_partyfinder_rejected_reasons_total",
			Help: "A counter of rejected job combinations by reason",
		}, []string{"reason"})

	//nolint:promlinter
	searchElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_partyfinder_search_elapsed_time_ms",
			Help:    "A histogram of party search functions elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"function"})

	//nolint:promlinter
	providerElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_partyfinder_provider_elapsed_time_ms",
			Help:    "A histogram of character data provider requests elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		}, []string{"endpoint", "status"})

	return prometheusMetrics{
		combinations:        *combinations,
		validConfigurations: *validConfigurations,
		rejectedReasons:     *rejectedReasons,
		searchElapsedTime:   *searchElapsedTime,
		providerElapsedTime: *providerElapsedTime,
	}
}

func (metrics prometheusMetrics) AddCombinations(partySize int, count int) {
	metrics.combinations.With(prometheus.Labels{"party_size": strconv.Itoa(partySize)}).Add(float64(count))
}

func (metrics prometheusMetrics) AddValidConfigurations(partySize int, count int) {
	metrics.validConfigurations.With(prometheus.Labels{"party_size": strconv.Itoa(partySize)}).Add(float64(count))
}

func (metrics prometheusMetrics) AddRejectedReason(reason string) {
	metrics.rejectedReasons.With(prometheus.Labels{"reason": reason}).Add(float64(1))
}

func (metrics prometheusMetrics) AddSearchElapsedTimeMs(function string, elapsedTime time.Duration) {
	metrics.searchElapsedTime.With(prometheus.Labels{"function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddProviderElapsedTimeMs(endpoint string, status string, elapsedTime time.Duration) {
	metrics.providerElapsedTime.With(prometheus.Labels{"endpoint": endpoint, "status": status}).Observe(float64(elapsedTime.Milliseconds()))
}
