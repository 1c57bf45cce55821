// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package presenter prints ranked party configurations one at a time and waits for the
// user between each of them.
package presenter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/models"
	"github.com/AccelByte/extend-party-finder/pkg/ranking"
)

type Presenter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a presenter reading confirmations from in. in is shared with whatever
// prompted the user before, so no input is lost to a second buffer.
func New(in *bufio.Scanner, out io.Writer) *Presenter {
	return &Presenter{
		in:  in,
		out: out,
	}
}

// Present pops configurations from the store, best first, until the user enters q,
// the input ends, or the store is empty. party must be the snapshot the store was built from.
// It returns how many configurations were shown.
func (p *Presenter) Present(rootScope *envelope.Scope, party models.Party, store *ranking.Store) (int, error) {
	scope := rootScope.NewChildScope("Presenter.Present")
	defer scope.Finish()

	shown := 0
	for !store.IsEmpty() {
		configuration, _ := store.PopBest()
		if err := p.render(party, configuration); err != nil {
			return shown, fmt.Errorf("write party configuration: %w", err)
		}
		shown++

		input, ok := p.readLine()
		if !ok {
			if err := p.in.Err(); err != nil {
				return shown, fmt.Errorf("read user input: %w", err)
			}
			scope.Log.Debug("input closed, stop presenting")
			break
		}
		if input == constants.QuitToken {
			break
		}
	}

	scope.SetAttributes("shown", shown)
	scope.Log.Debugf("presented %d party configurations, %d left", shown, store.Len())
	return shown, nil
}

func (p *Presenter) render(party models.Party, configuration models.PartyConfiguration) error {
	var builder strings.Builder
	for i, job := range party.Chosen(configuration.ChosenIndices) {
		fmt.Fprintf(&builder, "%-20s: %-15s Lv %d\n", party[i].DisplayName, job.Name, job.Level)
	}
	fmt.Fprintf(&builder, "- Lv Var: %d\n", configuration.Variance)
	fmt.Fprintf(&builder, "- Lv Avg: %d\n", configuration.AverageLevel)

	_, err := io.WriteString(p.out, builder.String())
	return err
}

func (p *Presenter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
