// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package ranking holds scored party configurations and hands them out best balance first.
package ranking

import (
	"container/heap"

	"github.com/AccelByte/extend-party-finder/pkg/models"
)

// Store is a min-priority queue of configurations keyed on variance.
// Configurations with equal variance come out in no particular order.
type Store struct {
	pq configurationPQ
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Insert(configuration models.PartyConfiguration) {
	heap.Push(&s.pq, configuration)
}

// PopBest removes and returns the configuration with the lowest variance.
// ok is false when the store is empty.
func (s *Store) PopBest() (configuration models.PartyConfiguration, ok bool) {
	if s.pq.Len() == 0 {
		return configuration, false
	}
	return heap.Pop(&s.pq).(models.PartyConfiguration), true
}

func (s *Store) Len() int {
	return s.pq.Len()
}

func (s *Store) IsEmpty() bool {
	return s.pq.Len() == 0
}

type configurationPQ []models.PartyConfiguration

func (pq configurationPQ) Len() int { return len(pq) }

// Less only compares variance, ties are left to the heap.
func (pq configurationPQ) Less(i, j int) bool {
	return pq[i].Variance < pq[j].Variance
}

func (pq configurationPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *configurationPQ) Push(x any) {
	*pq = append(*pq, x.(models.PartyConfiguration))
}

func (pq *configurationPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = models.PartyConfiguration{}
	*pq = old[:n-1]
	return item
}
