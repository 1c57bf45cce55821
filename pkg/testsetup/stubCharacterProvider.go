// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"fmt"

	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/models"
)

// StubCharacterProvider serves characters from memory. Characters are keyed by name,
// a name listed in Ambiguous returns models.ErrMultipleCharacters.
type StubCharacterProvider struct {
	ServerNames []string
	Characters  map[string]models.Member
	Ambiguous   []string
	Err         error
}

func (s StubCharacterProvider) Servers(scope *envelope.Scope) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ServerNames, nil
}

func (s StubCharacterProvider) SearchCharacter(scope *envelope.Scope, name string, server string) (models.CharacterSummary, error) {
	if s.Err != nil {
		return models.CharacterSummary{}, s.Err
	}
	for _, ambiguous := range s.Ambiguous {
		if ambiguous == name {
			return models.CharacterSummary{}, fmt.Errorf("%w: %s", models.ErrMultipleCharacters, name)
		}
	}
	if _, ok := s.Characters[name]; !ok {
		return models.CharacterSummary{}, fmt.Errorf("%w: %s", models.ErrCharacterNotFound, name)
	}
	return models.CharacterSummary{ID: s.idOf(name), Name: name}, nil
}

func (s StubCharacterProvider) Character(scope *envelope.Scope, id int) (models.Member, error) {
	for name, member := range s.Characters {
		if s.idOf(name) == id {
			return member, nil
		}
	}
	return models.Member{}, fmt.Errorf("%w: id %d", models.ErrCharacterNotFound, id)
}

func (s StubCharacterProvider) idOf(name string) int {
	id := 0
	for _, r := range name {
		id = id*31 + int(r)
	}
	if id < 0 {
		id = -id
	}
	return id + 1
}
