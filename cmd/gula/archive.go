package gula

import (
	"database/sql"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var archiveDate string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Close out the day: archive the total and reset the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			result, err := service.ArchiveDay(sqldb, archiveDate)
			if err != nil {
				return err
			}
			if result.Archived {
				r := result.Record
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %s: %.2f g (Kemenkes %.0f g, AHA %.0f g)\n", r.Date, r.TotalSugarG, r.GovernmentalLimitG, r.AssociationLimitG)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to archive (empty day or no profile).")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger reset (%d events cleared).\n", result.ClearedEvents)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().StringVar(&archiveDate, "date", "", "Date YYYY-MM-DD (default today)")
}
