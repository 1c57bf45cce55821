// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package roles classifies job identifiers into the party roles used by the composition rules.
package roles

import (
	"github.com/elliotchance/pie/v2"
)

type Role int

const (
	None Role = iota
	Tank
	Healer
	DPS
)

func (r Role) String() string {
	switch r {
	case Tank:
		return "tank"
	case Healer:
		return "healer"
	case DPS:
		return "dps"
	default:
		return "none"
	}
}

// Job ids per role. The sets are disjoint: arcanist (26) levels both summoner and scholar
// but is classified as a healer only.
//
//nolint:gochecknoglobals
var (
	TankJobs   = []int{1, 3, 32, 37}
	HealerJobs = []int{6, 26, 33}
	DPSJobs    = []int{2, 4, 29, 34, 5, 31, 38, 7, 35}
)

// Of returns the role of jobID, or None when it is not in any role set.
func Of(jobID int) Role {
	switch {
	case pie.Contains(TankJobs, jobID):
		return Tank
	case pie.Contains(HealerJobs, jobID):
		return Healer
	case pie.Contains(DPSJobs, jobID):
		return DPS
	default:
		return None
	}
}

// IsCombatJob returns true if jobID belongs to one of the role sets.
func IsCombatJob(jobID int) bool {
	return Of(jobID) != None
}
