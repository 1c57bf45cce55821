// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

import "time"

const (
	// DefaultLevelCap is the highest level a job can reach in the current expansion.
	DefaultLevelCap = 80

	PartyMinSize = 2
	PartyMaxSize = 4
)

const (
	HTTPTimeout      = 25 * time.Second
	CacheTTL         = 10 * time.Minute
	DefaultBaseURL   = "https://xivapi.com"
	DefaultUserAgent = "extend-party-finder"
)

const (
	SearchFunction    = "searchParty"
	ProviderServers   = "servers"
	ProviderSearch    = "characterSearch"
	ProviderCharacter = "character"

	// rejected configuration reason constants.
	RejectReasonRoleComposition = "role_composition"
	RejectReasonLockedJob       = "locked_job"
	RejectReasonAllMaxed        = "all_maxed"
)

// QuitToken stops the interactive presentation loop.
const QuitToken = "q"
