// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-party-finder/pkg/models"
)

type partyFile struct {
	Members []models.Member `yaml:"members"`
}

// LoadPartyFile reads a party from a yaml file of the form
//
//	members:
//	  - name: Alisaie Leveilleur
//	    jobs:
//	      - {id: 35, name: red mage, level: 70}
//
// Jobs outside the role sets are dropped, the rest keep their order.
func LoadPartyFile(path string) (models.Party, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read party file: %w", err)
	}
	return ParseParty(content)
}

func ParseParty(content []byte) (models.Party, error) {
	var file partyFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse party file: %w", err)
	}

	party := make(models.Party, 0, len(file.Members))
	for _, member := range file.Members {
		party = append(party, member.CombatJobs())
	}
	return party, nil
}
