// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package roster assembles the party a search runs on, either by asking the user for
// character names and fetching them from the provider, or from a party file.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/models"
)

// CharacterProvider looks up game servers and characters.
type CharacterProvider interface {
	Servers(scope *envelope.Scope) ([]string, error)
	SearchCharacter(scope *envelope.Scope, name string, server string) (models.CharacterSummary, error)
	Character(scope *envelope.Scope, id int) (models.Member, error)
}

type Assembler struct {
	provider CharacterProvider
	in       *bufio.Scanner
	out      io.Writer
}

func NewAssembler(provider CharacterProvider, in *bufio.Scanner, out io.Writer) *Assembler {
	return &Assembler{
		provider: provider,
		in:       in,
		out:      out,
	}
}

// Assemble asks for a server and then for up to four characters on it.
// The returned party may have fewer than two members; checking that is up to the caller.
func (a *Assembler) Assemble(rootScope *envelope.Scope) (models.Party, error) {
	scope := rootScope.NewChildScope("Assembler.Assemble")
	defer scope.Finish()

	server, err := a.PromptServer(scope)
	if err != nil {
		scope.RecordError(err)
		return nil, err
	}
	scope.SetAttributes(envelope.ServerNameTag, server)

	party, err := a.PromptParty(scope, server)
	if err != nil {
		scope.RecordError(err)
		return nil, err
	}
	scope.SetAttributes(envelope.PartySizeTag, party.Size())
	return party, nil
}

// PromptServer asks until the user enters a server that exists.
func (a *Assembler) PromptServer(scope *envelope.Scope) (string, error) {
	a.println("Getting list of FFXIV servers...")
	servers, err := a.provider.Servers(scope)
	if err != nil {
		return "", fmt.Errorf("get server list: %w", err)
	}

	for {
		a.println("Please enter the name of your FFXIV server:")
		server, ok := a.readLine()
		if !ok {
			return "", fmt.Errorf("%w: no server entered", io.ErrUnexpectedEOF)
		}
		if pie.Contains(servers, server) {
			return server, nil
		}
		a.printf("Server %s does not exist!\n", server)
	}
}

// PromptParty asks for character names until an empty line, the end of input, or a full party.
// Characters that cannot be found are reported and skipped. Only combat jobs are kept.
func (a *Assembler) PromptParty(scope *envelope.Scope, server string) (models.Party, error) {
	party := make(models.Party, 0, constants.PartyMaxSize)

	for party.Size() < constants.PartyMaxSize {
		a.printf("Character %d Name (press enter to stop):\n", party.Size()+1)
		name, ok := a.readLine()
		if !ok || name == "" {
			break
		}

		member, err := a.fetchMember(scope, name, server)
		switch {
		case errors.Is(err, models.ErrCharacterNotFound):
			a.println("No character with that name was found!")
			continue
		case errors.Is(err, models.ErrMultipleCharacters):
			a.println("Multiple characters were found!")
			continue
		case err != nil:
			return nil, err
		}

		party = append(party, member.CombatJobs())
		scope.Log.WithField("member", member.DisplayName).WithField("jobs", len(party[party.Size()-1].Jobs)).Debug("party member added")
	}

	return party, nil
}

func (a *Assembler) fetchMember(scope *envelope.Scope, name string, server string) (models.Member, error) {
	a.printf("Searching for %s in the Lodestone...\n", name)
	summary, err := a.provider.SearchCharacter(scope, name, server)
	if err != nil {
		return models.Member{}, err
	}
	a.printf("Found character %s with ID %d!\n", summary.Name, summary.ID)

	a.printf("Getting character data for %s...\n", summary.Name)
	member, err := a.provider.Character(scope, summary.ID)
	if err != nil {
		return models.Member{}, fmt.Errorf("get character %d: %w", summary.ID, err)
	}
	return member, nil
}

func (a *Assembler) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *Assembler) println(line string) {
	fmt.Fprintln(a.out, line)
}

func (a *Assembler) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
