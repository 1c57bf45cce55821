// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package partyfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/models"
	"github.com/AccelByte/extend-party-finder/pkg/testsetup"
)

func TestRules_IsValid(t *testing.T) {
	type args struct {
		party      models.Party
		assignment models.Assignment
	}
	tests := []struct {
		name       string
		args       args
		want       bool
		wantReason string
	}{
		{
			name:       "tank and healer",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(6, 50))), assignment: models.Assignment{0, 0}},
			want:       true,
			wantReason: "",
		},
		{
			name:       "two tanks",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(1, 50))), assignment: models.Assignment{0, 0}},
			want:       false,
			wantReason: constants.RejectReasonRoleComposition,
		},
		{
			name:       "no healer",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(2, 50)), testsetup.Member("c", testsetup.Job(4, 50))), assignment: models.Assignment{0, 0, 0}},
			want:       false,
			wantReason: constants.RejectReasonRoleComposition,
		},
		{
			name: "two healers with a tank",
			args: args{
				party:      testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(6, 50)), testsetup.Member("c", testsetup.Job(33, 50))),
				assignment: models.Assignment{0, 0, 0},
			},
			want:       false,
			wantReason: constants.RejectReasonRoleComposition,
		},
		{
			name:       "locked healer",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(6, 0))), assignment: models.Assignment{0, 0}},
			want:       false,
			wantReason: constants.RejectReasonLockedJob,
		},
		{
			name:       "locked dps",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 50)), testsetup.Member("b", testsetup.Job(6, 50)), testsetup.Member("c", testsetup.Job(7, 0))), assignment: models.Assignment{0, 0, 0}},
			want:       false,
			wantReason: constants.RejectReasonLockedJob,
		},
		{
			name:       "everyone at cap",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 80)), testsetup.Member("b", testsetup.Job(6, 80))), assignment: models.Assignment{0, 0}},
			want:       false,
			wantReason: constants.RejectReasonAllMaxed,
		},
		{
			name:       "one below cap",
			args:       args{party: testsetup.Party(testsetup.Member("a", testsetup.Job(1, 80)), testsetup.Member("b", testsetup.Job(6, 80)), testsetup.Member("c", testsetup.Job(35, 79))), assignment: models.Assignment{0, 0, 0}},
			want:       true,
			wantReason: "",
		},
		{
			name: "picks by index",
			args: args{
				party:      testsetup.Party(testsetup.Member("a", testsetup.Job(6, 10), testsetup.Job(1, 20)), testsetup.Member("b", testsetup.Job(6, 30), testsetup.Job(1, 40))),
				assignment: models.Assignment{1, 0},
			},
			want:       true,
			wantReason: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			assert.Equal(t, tt.want, rules.IsValid(tt.args.party, tt.args.assignment))
			assert.Equal(t, tt.wantReason, rules.rejectReason(tt.args.party, tt.args.assignment))
		})
	}
}

func TestRules_LevelCap(t *testing.T) {
	party := testsetup.Party(testsetup.Member("a", testsetup.Job(1, 70)), testsetup.Member("b", testsetup.Job(6, 70)))

	assert.True(t, Rules{LevelCap: 80}.IsValid(party, models.Assignment{0, 0}))
	assert.False(t, Rules{LevelCap: 70}.IsValid(party, models.Assignment{0, 0}))
	assert.Equal(t, constants.DefaultLevelCap, DefaultRules().LevelCap)
}
