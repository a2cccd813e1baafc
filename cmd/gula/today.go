package gula

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's sugar intake against both limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.DaySummary(sqldb, todayDate)
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return fmt.Errorf("encode day status: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s! Laporan gula untuk %s\n", service.Greeting(time.Now().Hour()), status.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.2f g\n", status.TotalSugarG)
			fmt.Fprintf(cmd.OutOrStdout(), "Kemenkes limit: %.0f g (remaining %.2f g)\n", status.Limits.GovernmentalG, status.RemainingGovernmentalG)
			if status.Limits.AssociationKnown {
				fmt.Fprintf(cmd.OutOrStdout(), "AHA limit: %.0f g (remaining %.2f g)\n", status.Limits.AssociationG, status.RemainingAssociationG)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "AHA limit: set a profile to determine it")
			}
			if status.OverGovernmental {
				fmt.Fprintln(cmd.OutOrStdout(), "WARNING: intake exceeds the Kemenkes limit")
			}
			if status.OverAssociation {
				fmt.Fprintln(cmd.OutOrStdout(), "WARNING: intake exceeds the AHA limit")
			}

			if len(status.Events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No intake recorded.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "TIME\tFOOD\tAMOUNT\tSUGAR")
			for _, e := range status.Events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g %s\t%.2f g\n", e.ConsumedAt.Local().Format("15:04"), e.FoodName, e.Quantity, e.Unit, e.SugarG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}
