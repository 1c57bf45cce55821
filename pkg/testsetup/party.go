// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"fmt"

	"github.com/AccelByte/extend-party-finder/pkg/models"
)

//nolint:gochecknoglobals
var jobNames = map[int]string{
	1: "paladin", 3: "warrior", 32: "dark knight", 37: "gunbreaker",
	6: "white mage", 26: "scholar", 33: "astrologian",
	2: "monk", 4: "dragoon", 29: "ninja", 34: "samurai", 5: "bard",
	31: "machinist", 38: "dancer", 7: "black mage", 35: "red mage",
}

// Job builds a job record with a readable name for the id.
func Job(jobID int, level int) models.JobRecord {
	name, ok := jobNames[jobID]
	if !ok {
		name = fmt.Sprintf("job %d", jobID)
	}
	return models.JobRecord{JobID: jobID, Name: name, Level: level}
}

func Member(name string, jobs ...models.JobRecord) models.Member {
	return models.Member{DisplayName: name, Jobs: jobs}
}

func Party(members ...models.Member) models.Party {
	return models.Party(members)
}
