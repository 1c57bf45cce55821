// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name  string
		jobID int
		want  Role
	}{
		{name: "gladiator is tank", jobID: 1, want: Tank},
		{name: "gunbreaker is tank", jobID: 37, want: Tank},
		{name: "conjurer is healer", jobID: 6, want: Healer},
		{name: "arcanist is healer", jobID: 26, want: Healer},
		{name: "astrologian is healer", jobID: 33, want: Healer},
		{name: "pugilist is dps", jobID: 2, want: DPS},
		{name: "red mage is dps", jobID: 35, want: DPS},
		{name: "crafter is none", jobID: 8, want: None},
		{name: "zero is none", jobID: 0, want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.jobID))
			assert.Equal(t, tt.want != None, IsCombatJob(tt.jobID))
		})
	}
}

func TestRoleSetsAreDisjoint(t *testing.T) {
	seen := make(map[int]Role)
	for role, ids := range map[Role][]int{Tank: TankJobs, Healer: HealerJobs, DPS: DPSJobs} {
		for _, id := range ids {
			other, exist := seen[id]
			assert.Falsef(t, exist, "job %d is both %s and %s", id, role, other)
			seen[id] = role
		}
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "tank", Tank.String())
	assert.Equal(t, "healer", Healer.String())
	assert.Equal(t, "dps", DPS.String())
	assert.Equal(t, "none", None.String())
}
