// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cmd

import (
	"bufio"
	"time"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/roster"
	"github.com/AccelByte/extend-party-finder/pkg/xivapi"
)

func searchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look up characters on a server and rank their party configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := envelope.NewRootScope(cmd.Context(), "partyfinder.search", "")
			defer scope.Finish()

			client := xivapi.NewClient(xivapi.Options{
				BaseURL:       a.cfg.XivapiBaseURL,
				Timeout:       time.Duration(a.cfg.HTTPTimeoutSecond) * time.Second,
				RetryAttempts: a.cfg.HTTPRetryAttempts,
				CacheTTL:      time.Duration(a.cfg.CacheTTLSecond) * time.Second,
			}, a.metrics)

			in := bufio.NewScanner(cmd.InOrStdin())
			party, err := roster.NewAssembler(client, in, cmd.OutOrStdout()).Assemble(scope)
			if err != nil {
				return err
			}

			return a.findAndPresent(scope, cmd.OutOrStdout(), in, party)
		},
	}
	return cmd
}
