// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package partyfinder

import (
	"github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-party-finder/pkg/mathutil"
	"github.com/AccelByte/extend-party-finder/pkg/models"
)

// Score computes the balance of a valid assignment.
//
// Variance sums the level difference over every ordered pair of members, so each
// unordered pair is counted twice. Only the ordering between configurations matters.
// The average level is floored.
func Score(party models.Party, assignment models.Assignment) models.PartyConfiguration {
	levels := pie.Map(party.Chosen(assignment), func(job models.JobRecord) int {
		return job.Level
	})

	variance := 0
	for i := range levels {
		for j := range levels {
			if i != j {
				variance += mathutil.Abs(levels[i] - levels[j])
			}
		}
	}

	averageLevel := 0
	if len(levels) > 0 {
		averageLevel = pie.Sum(levels) / len(levels)
	}

	return models.PartyConfiguration{
		ChosenIndices: assignment.Clone(),
		Variance:      variance,
		AverageLevel:  averageLevel,
	}
}
