package gula

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	importIn   string
	importMode string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, history, and today's ledger as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			snapshot, err := service.ExportSnapshot(sqldb)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := os.WriteFile(exportOut, append(b, '\n'), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import archived days from a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var snapshot service.ExportData
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return fmt.Errorf("decode import file: %w", err)
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.ImportHistory(sqldb, snapshot.History, service.ImportMode(importMode))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, updated %d, skipped %d\n", report.Inserted, report.Updated, report.Skipped)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file")
	importCmd.Flags().StringVar(&importMode, "mode", "skip", "Conflict mode: skip or replace")
	_ = importCmd.MarkFlagRequired("in")
}
