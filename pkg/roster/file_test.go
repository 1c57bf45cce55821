// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-party-finder/pkg/models"
)

const partyYAML = `
members:
  - name: Estinien Varlineau
    jobs:
      - {id: 4, name: dragoon, level: 80}
      - {id: 1, name: paladin, level: 52}
      - {id: 10, name: armorer, level: 30}
  - name: Lucia goe Junius
    jobs:
      - id: 6
        name: white mage
        level: 50
`

func TestParseParty(t *testing.T) {
	party, err := ParseParty([]byte(partyYAML))

	require.NoError(t, err)
	assert.Equal(t, models.Party{
		{DisplayName: "Estinien Varlineau", Jobs: []models.JobRecord{
			{JobID: 4, Name: "dragoon", Level: 80},
			{JobID: 1, Name: "paladin", Level: 52},
		}},
		{DisplayName: "Lucia goe Junius", Jobs: []models.JobRecord{
			{JobID: 6, Name: "white mage", Level: 50},
		}},
	}, party)
}

func TestParseParty_Invalid(t *testing.T) {
	_, err := ParseParty([]byte("members: [oops"))

	assert.ErrorContains(t, err, "parse party file")
}

func TestLoadPartyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.yaml")
	require.NoError(t, os.WriteFile(path, []byte(partyYAML), 0o600))

	party, err := LoadPartyFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, party.Size())

	_, err = LoadPartyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
