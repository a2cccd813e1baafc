package gula

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	addAmount float64
	addUnit   string
	addDate   string
	addTime   string
)

var addCmd = &cobra.Command{
	Use:   "add <food>",
	Short: "Record a consumed food or drink",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateTimeOrNow(addDate, addTime)
		if err != nil {
			return err
		}
		food := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			event, err := service.AddIntake(sqldb, service.AddIntakeInput{
				Food:     food,
				Quantity: addAmount,
				Unit:     addUnit,
				Consumed: consumed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%g %s): %.2f g sugar\n", event.FoodName, event.Quantity, event.Unit, event.SugarG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Float64Var(&addAmount, "amount", 1, "Quantity consumed")
	addCmd.Flags().StringVar(&addUnit, "unit", "", "Unit: gram, ml, the food's serving unit, or a household measure")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addTime, "time", "", "Time HH:MM (default now)")
	_ = addCmd.MarkFlagRequired("unit")
}
