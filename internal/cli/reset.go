package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitwizard/internal/service"
)

func newResetCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved names and bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*cfgPath, func(a *app) error {
				if err := service.ClearSnapshot(cmd.Context(), a.store); err != nil {
					return fmt.Errorf("clear saved session: %w", err)
				}
				slog.Info("Saved session cleared")
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Saved names and bills cleared.")
				return err
			})
		},
	}
}
