package gula

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	historyJSON bool
	historyFrom string
	historyTo   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived days, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := service.HistoryRange(sqldb, service.HistoryFilter{
				FromDate: historyFrom,
				ToDate:   historyTo,
			})
			if err != nil {
				return err
			}
			if historyJSON {
				b, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("encode history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No archived days yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTOTAL\tKEMENKES\tAHA")
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f g\t%.0f g\t%.0f g\n", r.Date, r.TotalSugarG, r.GovernmentalLimitG, r.AssociationLimitG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Only include days on or after this date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "Only include days on or before this date (YYYY-MM-DD)")
}
