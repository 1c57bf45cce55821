// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cmd

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/roster"
)

func fileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file <party.yaml>",
		Short: "Rank the party configurations of a party read from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := envelope.NewRootScope(cmd.Context(), "partyfinder.file", "")
			defer scope.Finish()

			party, err := roster.LoadPartyFile(args[0])
			if err != nil {
				return err
			}

			return a.findAndPresent(scope, cmd.OutOrStdout(), bufio.NewScanner(cmd.InOrStdin()), party)
		},
	}
	return cmd
}
