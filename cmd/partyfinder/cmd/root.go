// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-party-finder/pkg/config"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cfg, loadErr := config.Load()
	if cfg == nil {
		cfg = &config.Config{}
	}
	a := newApp(cfg)

	cmd := &cobra.Command{
		Use:          "partyfinder",
		Short:        "partyfinder ranks the job choices of a party by how evenly matched their levels are.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			return a.start()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.stop(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level (trace, debug, info, warn, error)")
	flags.IntVar(&cfg.LevelCap, "level-cap", cfg.LevelCap, "maximum achievable job level")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address to serve prometheus metrics on, disabled when empty")
	flags.StringVar(&cfg.XivapiBaseURL, "xivapi-url", cfg.XivapiBaseURL, "base url of the character data provider")

	cmd.AddCommand(
		searchCmd(a),
		fileCmd(a),
	)

	return cmd
}
