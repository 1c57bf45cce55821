// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ErrPartyTooSmall = errors.New("party must consist of at least two characters")
	ErrPartyTooLarge = errors.New("party must not consist of more than four characters")
	ErrInvalidMember = errors.New("invalid party member")
)

var validationErrorCodeMap = map[error]int{
	ErrPartyTooSmall: 520101,
	ErrPartyTooLarge: 520102,
	ErrInvalidMember: 520103,
}

// ValidationErrorCode returns a code for the error, unwrapping it to find a registered one.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for target, code := range validationErrorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return 20002
}
