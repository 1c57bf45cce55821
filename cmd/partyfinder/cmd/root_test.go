// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partyYAML = `
members:
  - name: Estinien Varlineau
    jobs:
      - {id: 4, name: dragoon, level: 80}
      - {id: 1, name: paladin, level: 52}
  - name: Lucia goe Junius
    jobs:
      - {id: 6, name: white mage, level: 50}
`

func writeParty(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "party.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := RootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFileCommand(t *testing.T) {
	out, err := execute(t, "q\n", "file", writeParty(t, partyYAML))

	require.NoError(t, err)
	assert.Contains(t, out, "Determining best possible party configurations for levelling...")
	assert.Contains(t, out, "Estinien Varlineau  : paladin         Lv 52")
	assert.Contains(t, out, "Lucia goe Junius    : white mage      Lv 50")
	assert.Contains(t, out, "- Lv Var: 4")
	assert.Contains(t, out, "- Lv Avg: 51")
}

func TestFileCommand_PartyTooSmall(t *testing.T) {
	single := "members:\n  - name: Alphinaud\n    jobs:\n      - {id: 33, name: astrologian, level: 60}\n"

	out, err := execute(t, "", "file", writeParty(t, single))

	require.NoError(t, err)
	assert.Contains(t, out, "Party must consist of at least two characters!")
	assert.NotContains(t, out, "Determining")
}

func TestFileCommand_LevelAboveCapCountsAsMaxed(t *testing.T) {
	aboveCap := "members:\n  - name: Thancred\n    jobs:\n      - {id: 1, name: paladin, level: 50}\n      - {id: 7, name: black mage, level: 90}\n  - name: Minfilia\n    jobs:\n      - {id: 6, name: white mage, level: 50}\n"

	out, err := execute(t, "q\n", "file", writeParty(t, aboveCap))

	require.NoError(t, err)
	assert.Contains(t, out, "Thancred            : paladin         Lv 50")
	assert.Contains(t, out, "- Lv Var: 0")
	assert.Contains(t, out, "- Lv Avg: 50")
	assert.Equal(t, 1, strings.Count(out, "- Lv Var:"))
}

func TestFileCommand_LevelCapFlag(t *testing.T) {
	atCap := "members:\n  - name: Thancred\n    jobs:\n      - {id: 1, name: paladin, level: 70}\n  - name: Minfilia\n    jobs:\n      - {id: 6, name: white mage, level: 70}\n"

	out, err := execute(t, "", "--level-cap", "70", "file", writeParty(t, atCap))

	require.NoError(t, err)
	assert.Contains(t, out, "No valid party configuration found.")
}

func TestFileCommand_NoValidConfiguration(t *testing.T) {
	noHealer := "members:\n  - name: Y'shtola\n    jobs:\n      - {id: 7, name: black mage, level: 60}\n  - name: Urianger\n    jobs:\n      - {id: 1, name: paladin, level: 60}\n"

	out, err := execute(t, "", "file", writeParty(t, noHealer))

	require.NoError(t, err)
	assert.Contains(t, out, "No valid party configuration found.")
	assert.NotContains(t, out, "- Lv Var")
}

func TestFileCommand_RequiresPath(t *testing.T) {
	_, err := execute(t, "", "file")

	assert.Error(t, err)
}
