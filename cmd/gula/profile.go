package gula

import (
	"database/sql"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var (
	profileName   string
	profileAge    int
	profileSex    string
	profileWeight float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.SaveProfile(sqldb, service.SaveProfileInput{
				Name:     profileName,
				Age:      profileAge,
				Sex:      profileSex,
				WeightKg: profileWeight,
			})
			if err != nil {
				return err
			}
			limits := service.ResolveLimits(p)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s (%s)\n", p.Name, p.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily limits: Kemenkes %.0f g | AHA %.0f g\n", limits.GovernmentalG, limits.AssociationG)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile and limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Run: gula profile set --name ... --age ... --sex ... --weight ...")
				return nil
			}
			limits := service.ResolveLimits(p)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Sex: %s\n", p.Sex)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", p.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Limits: Kemenkes %.0f g | AHA %.0f g\n", limits.GovernmentalG, limits.AssociationG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex: male or female")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight in kg")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("sex")
	_ = profileSetCmd.MarkFlagRequired("weight")
}
