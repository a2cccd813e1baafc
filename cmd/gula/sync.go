package gula

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Qodor04/gula-cli/internal/provider/sheetsync"
	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the archive with a remote history webhook",
}

var syncSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Configure the remote webhook URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := strings.TrimSpace(args[0])
		if url == "" {
			return fmt.Errorf("url is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetConfig(sqldb, service.ConfigSyncURL, url); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sync URL set to %s\n", url)
			return nil
		})
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local archive to the remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			client, err := syncClient(sqldb)
			if err != nil {
				return err
			}
			pushed, err := service.SyncPush(cmd.Context(), sqldb, client)
			if err != nil {
				// Local records stay intact; the user can retry the push.
				fmt.Fprintf(cmd.OutOrStderr(), "Warning: push failed, local archive unchanged: %v\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d archived days\n", pushed)
			return nil
		})
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Merge the remote archive into the local one (local wins)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			client, err := syncClient(sqldb)
			if err != nil {
				return err
			}
			report, err := service.SyncPull(cmd.Context(), sqldb, client)
			if err != nil {
				return err
			}
			if report.Warning != "" {
				fmt.Fprintf(cmd.OutOrStderr(), "Warning: %s\n", report.Warning)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d records: %d inserted, %d skipped\n", report.Pulled, report.Import.Inserted, report.Import.Skipped)
			return nil
		})
	},
}

func syncClient(sqldb *sql.DB) (*sheetsync.Client, error) {
	url, found, err := service.GetConfig(sqldb, service.ConfigSyncURL)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("sync url not configured (run: gula sync set-url <url>)")
	}
	return &sheetsync.Client{BaseURL: url}, nil
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncSetURLCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
}
