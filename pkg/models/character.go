// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import "errors"

var (
	ErrServerNotFound     = errors.New("server does not exist")
	ErrCharacterNotFound  = errors.New("no character with that name was found")
	ErrMultipleCharacters = errors.New("multiple characters were found")
)

// CharacterSummary is a single hit of a character search.
type CharacterSummary struct {
	ID   int
	Name string
}
