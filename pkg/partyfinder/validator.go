// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package partyfinder

import (
	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/models"
	"github.com/AccelByte/extend-party-finder/pkg/roles"
)

// Rules holds the values the validator checks against. It is built once at startup
// and not changed afterwards.
type Rules struct {
	LevelCap int
}

func DefaultRules() Rules {
	return Rules{LevelCap: constants.DefaultLevelCap}
}

// IsValid returns true if the assignment has exactly one tank and one healer,
// every chosen job is unlocked, and at least one chosen job can still level.
func (r Rules) IsValid(party models.Party, assignment models.Assignment) bool {
	return r.rejectReason(party, assignment) == ""
}

// rejectReason returns the first rule the assignment breaks, or empty when it passes.
// Members other than the tank and healer are not checked for dps: any extra tank or
// healer already breaks the counts.
func (r Rules) rejectReason(party models.Party, assignment models.Assignment) string {
	var numTanks, numHealers int
	allUnlocked := true
	allMaxed := true

	for _, job := range party.Chosen(assignment) {
		switch job.Role() {
		case roles.Tank:
			numTanks++
		case roles.Healer:
			numHealers++
		}

		if !job.IsUnlocked() {
			allUnlocked = false
		}
		if job.Level < r.LevelCap {
			allMaxed = false
		}
	}

	switch {
	case numTanks != 1 || numHealers != 1:
		return constants.RejectReasonRoleComposition
	case !allUnlocked:
		return constants.RejectReasonLockedJob
	case allMaxed:
		return constants.RejectReasonAllMaxed
	}
	return ""
}
