package main

import (
	"fmt"

	"taxapp/internal/config"
	"taxapp/internal/tax"

	"github.com/spf13/cobra"
)

// taxCommand constructs the 'tax' subcommand that computes the tax liability
// for a given annual income without starting the server or dispatching any
// notification.
func taxCommand(_ *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Computes the tax liability for a given annual income",
		Run: func(cmd *cobra.Command, args []string) {
			income, _ := cmd.Flags().GetFloat64("income")

			fmt.Printf("%.2f\n", tax.Compute(income)) //nolint: forbidigo
		},
	}

	cmd.Flags().Float64("income", 0, "Annual income")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}
