// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PartyFinderMetrics interface {
	AddCombinations(partySize int, count int)
	AddValidConfigurations(partySize int, count int)
	AddRejectedReason(reason string)
	AddSearchElapsedTimeMs(function string, elapsedTime time.Duration)
	AddProviderElapsedTimeMs(endpoint string, status string, elapsedTime time.Duration)
}

func NewMetrics(registry *prometheus.Registry) PartyFinderMetrics {
	return setupPrometheusMetrics(registry)
}
