package gula

import (
	"database/sql"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database for inconsistent rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			issues, err := service.CheckIntegrity(sqldb)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", issue.Kind, issue.Detail)
			}
			return fmt.Errorf("found %d issue(s)", len(issues))
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
