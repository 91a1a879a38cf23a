// Package cli holds the splitwizard cobra commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitwizard/internal/service"
	"github.com/mmynk/splitwizard/internal/tui"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:          "splitwizard",
		Short:        "Split shared bills between friends",
		Long:         "splitwizard walks you through entering names and bills, choosing who shares each bill, and shows who owes whom.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cfgPath, func(a *app) error {
				ctx := cmd.Context()
				svc := service.NewWizardService(ctx, a.store, a.rec)
				err := tui.Run(ctx, svc, tui.Options{
					CurrencySymbol: a.cfg.UI.CurrencySymbol,
					AlertTimeout:   a.cfg.UI.AlertTimeout,
				})
				if err != nil {
					slog.Error("Wizard exited with error", "error", err, "session_id", svc.SessionID())
				}
				return err
			})
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is $XDG_CONFIG_HOME/splitwizard/config.toml)")

	rootCmd.AddCommand(
		newShowCmd(&cfgPath),
		newResetCmd(&cfgPath),
		newVersionCmd(),
	)
	return rootCmd
}
