package gula

import (
	"database/sql"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the daily sugar limits in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			limits := service.ResolveLimits(profile)
			fmt.Fprintf(cmd.OutOrStdout(), "Kemenkes: %.0f g/day\n", limits.GovernmentalG)
			if limits.AssociationKnown {
				fmt.Fprintf(cmd.OutOrStdout(), "AHA: %.0f g/day (%s)\n", limits.AssociationG, profile.Category)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "AHA: undetermined (no profile set)")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(limitsCmd)
}
