package gula

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "gula",
	Short: "gula tracks daily sugar intake from your terminal",
	Long:  "gula is a local-first daily sugar intake tracker with a built-in Indonesian food catalog, Kemenkes and AHA limits, and a per-day archive.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
