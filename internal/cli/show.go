package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/service"
	"github.com/mmynk/splitwizard/internal/storage"
)

func newShowCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved names and bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*cfgPath, func(a *app) error {
				ctx := cmd.Context()
				snap := service.LoadSnapshot(ctx, a.store)

				var saved time.Time
				for _, key := range []string{storage.KeyNames, storage.KeyBills} {
					ts, err := a.store.UpdatedAt(ctx, key)
					if err != nil && !errors.Is(err, storage.ErrNotFound) {
						return err
					}
					if ts.After(saved) {
						saved = ts
					}
				}
				return writeSnapshot(cmd.OutOrStdout(), snap, a.cfg.UI.CurrencySymbol, saved)
			})
		},
	}
}

func writeSnapshot(w io.Writer, snap service.Snapshot, currency string, saved time.Time) error {
	if len(snap.Names) == 0 && len(snap.Bills) == 0 {
		_, err := fmt.Fprintln(w, "Nothing saved yet.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Names (%d)\n", len(snap.Names)); err != nil {
		return err
	}
	for _, name := range snap.Names {
		if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Bills (%d)\n", len(snap.Bills)); err != nil {
		return err
	}
	for _, b := range snap.Bills {
		if _, err := fmt.Fprintf(w, "  %s  %s%s  paid by %s\n", b.Description, currency, models.FormatAmount(b.Amount), b.PaidBy); err != nil {
			return err
		}
	}

	if !saved.IsZero() {
		_, err := fmt.Fprintf(w, "Last saved %s\n", saved.Format(time.DateTime))
		return err
	}
	return nil
}
