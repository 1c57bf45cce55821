// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"fmt"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/typ.v4/slices"

	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/roles"
)

// JobRecord is one job owned by a member. Level 0 means the job is not unlocked yet.
type JobRecord struct {
	JobID int    `json:"id"    yaml:"id"    valid:"range(0|2147483647)"`
	Name  string `json:"name"  yaml:"name"  valid:"required,stringlength(1|64)"`
	Level int    `json:"level" yaml:"level" valid:"range(0|2147483647)"`
}

func (j JobRecord) Role() roles.Role {
	return roles.Of(j.JobID)
}

func (j JobRecord) IsUnlocked() bool {
	return j.Level > 0
}

type Member struct {
	DisplayName string      `json:"name" yaml:"name" valid:"required,stringlength(1|64)"`
	Jobs        []JobRecord `json:"jobs" yaml:"jobs"`
}

// CombatJobs returns the member with only the jobs that belong to a role set.
// Job order is kept since it is the index space of the search.
func (m Member) CombatJobs() Member {
	return Member{
		DisplayName: m.DisplayName,
		Jobs: slices.Filter(m.Jobs, func(job JobRecord) bool {
			return roles.IsCombatJob(job.JobID)
		}),
	}
}

// Party is the ordered list of members taking part in a search.
type Party []Member

func (p Party) Size() int {
	return len(p)
}

// JobCounts returns the number of jobs owned by each member, in party order.
func (p Party) JobCounts() []int {
	counts := make([]int, len(p))
	for i, member := range p {
		counts[i] = len(member.Jobs)
	}
	return counts
}

// Chosen resolves an assignment into the job picked for each member.
func (p Party) Chosen(assignment Assignment) []JobRecord {
	jobs := make([]JobRecord, len(assignment))
	for i, index := range assignment {
		jobs[i] = p[i].Jobs[index]
	}
	return jobs
}

// Copy deep copies the party so a search works on a snapshot.
func (p Party) Copy() Party {
	copied, err := copystructure.Copy(p)
	if err == nil {
		if party, ok := copied.(Party); ok {
			return party
		}
	}
	logrus.Debugf("copystructure could not copy party, copying job lists by hand: %v", err)
	return p.copyJobs()
}

func (p Party) copyJobs() Party {
	if p == nil {
		return nil
	}
	party := make(Party, len(p))
	for i, member := range p {
		party[i] = Member{DisplayName: member.DisplayName}
		if member.Jobs != nil {
			party[i].Jobs = append(make([]JobRecord, 0, len(member.Jobs)), member.Jobs...)
		}
	}
	return party
}

// Validate checks the party size and the fields of every member. Levels above the
// level cap are accepted, the search treats such jobs as maxed.
func (p Party) Validate() error {
	if len(p) < constants.PartyMinSize {
		return ErrPartyTooSmall
	}
	if len(p) > constants.PartyMaxSize {
		return ErrPartyTooLarge
	}

	for _, member := range p {
		if _, err := validator.ValidateStruct(member); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMember, err.Error())
		}
		for _, job := range member.Jobs {
			if _, err := validator.ValidateStruct(job); err != nil {
				return fmt.Errorf("%w: %s: %s", ErrInvalidMember, member.DisplayName, err.Error())
			}
		}
	}
	return nil
}

// Assignment holds one job index per member.
type Assignment []int

func (a Assignment) Clone() Assignment {
	return append(Assignment{}, a...)
}

// PartyConfiguration is a validated and scored assignment.
type PartyConfiguration struct {
	ChosenIndices Assignment
	Variance      int
	AverageLevel  int
}
