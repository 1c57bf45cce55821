package testsetup

import (
	"time"

	"github.com/AccelByte/extend-party-finder/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) AddCombinations(partySize int, count int) {
}

func (s stubMetricsCollection) AddValidConfigurations(partySize int, count int) {
}

func (s stubMetricsCollection) AddRejectedReason(reason string) {
}

func (s stubMetricsCollection) AddSearchElapsedTimeMs(function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddProviderElapsedTimeMs(endpoint string, status string, elapsedTime time.Duration) {
}

func NewMetrics() metrics.PartyFinderMetrics {
	return stubMetricsCollection{}
}

// CountingMetrics records what a search reported, for assertions.
type CountingMetrics struct {
	stubMetricsCollection
	Combinations int
	Valid        int
	Rejected     map[string]int
}

func NewCountingMetrics() *CountingMetrics {
	return &CountingMetrics{Rejected: make(map[string]int)}
}

func (c *CountingMetrics) AddCombinations(partySize int, count int) {
	c.Combinations += count
}

func (c *CountingMetrics) AddValidConfigurations(partySize int, count int) {
	c.Valid += count
}

func (c *CountingMetrics) AddRejectedReason(reason string) {
	c.Rejected[reason]++
}
