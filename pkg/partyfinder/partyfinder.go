// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package partyfinder searches every job combination of a party and ranks the valid ones
// by how close the chosen levels are.
package partyfinder

import (
	"time"

	"github.com/AccelByte/extend-party-finder/pkg/common"
	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/group_generator"
	"github.com/AccelByte/extend-party-finder/pkg/metrics"
	"github.com/AccelByte/extend-party-finder/pkg/models"
	"github.com/AccelByte/extend-party-finder/pkg/ranking"
)

type PartyFinder struct {
	rules   Rules
	metrics metrics.PartyFinderMetrics
}

func New(rules Rules, metrics metrics.PartyFinderMetrics) *PartyFinder {
	return &PartyFinder{
		rules:   rules,
		metrics: metrics,
	}
}

// Search walks every assignment of the party, keeps the valid ones and returns them ranked.
// The party must have been checked for size by the caller. The search works on a copy,
// so later changes to party do not affect the stored configurations.
// An empty store means no valid configuration exists.
func (f *PartyFinder) Search(rootScope *envelope.Scope, party models.Party) (*ranking.Store, models.Party) {
	scope := rootScope.NewChildScope("PartyFinder.Search")
	defer scope.Finish()

	startTime := time.Now()
	defer func() {
		f.metrics.AddSearchElapsedTimeMs(constants.SearchFunction, time.Since(startTime))
	}()

	snapshot := party.Copy()
	store := ranking.NewStore()

	odometer := group_generator.NewOdometer(snapshot.JobCounts())
	scope.Log.Debugf("searching %d party configurations, job counts: %s", odometer.Count(), common.LogJSONFormatter(snapshot.JobCounts()))

	var combinations, valid int
	for assignment := odometer.Next(); assignment != nil; assignment = odometer.Next() {
		combinations++

		if reason := f.rules.rejectReason(snapshot, assignment); reason != "" {
			f.metrics.AddRejectedReason(reason)
			continue
		}

		store.Insert(Score(snapshot, assignment))
		valid++
	}

	f.metrics.AddCombinations(snapshot.Size(), combinations)
	f.metrics.AddValidConfigurations(snapshot.Size(), valid)

	scope.SetAttributes(envelope.PartySizeTag, snapshot.Size())
	scope.SetAttributes(envelope.CombinationsTag, combinations)
	scope.SetAttributes(envelope.ValidCountTag, valid)
	scope.Log.Infof("found %d valid party configurations out of %d combinations", valid, combinations)

	return store, snapshot
}
