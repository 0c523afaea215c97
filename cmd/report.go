package main

import (
	"context"
	"os"

	"taxapp/internal/config"
	"taxapp/internal/report"
	"taxapp/internal/tax"
	"taxapp/pkg/domain"
	"taxapp/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCommand constructs the 'report' subcommand that renders the PDF tax
// report for the given taxpayer details and writes it to a file.
func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Renders the PDF tax report to a file",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetInt("age")
			email, _ := cmd.Flags().GetString("email")
			mobile, _ := cmd.Flags().GetString("mobile")
			income, _ := cmd.Flags().GetFloat64("income")
			out, _ := cmd.Flags().GetString("out")

			result := domain.TaxResult{
				TaxpayerRequest: domain.TaxpayerRequest{
					Name:   name,
					Age:    age,
					Email:  email,
					Mobile: mobile,
					Income: income,
				},
				Tax: tax.Compute(income),
			}

			renderer := report.New(report.Options{CurrencyPrefix: cfg.Report.CurrencyPrefix})
			pdf, err := renderer.Render(result)
			if err != nil {
				logger.Fatal(context.Background(), "could not render report", zap.Error(err))
			}

			if err := os.WriteFile(out, pdf, 0o600); err != nil {
				logger.Fatal(context.Background(), "could not write report file", zap.Error(err))
			}

			logger.Info(context.Background(), "report written",
				zap.String("path", out),
				zap.Float64("tax", result.Tax))
		},
	}

	cmd.Flags().String("name", "", "Taxpayer name")
	cmd.Flags().Int("age", 0, "Taxpayer age")
	cmd.Flags().String("email", "", "Taxpayer email address")
	cmd.Flags().String("mobile", "", "Taxpayer mobile number")
	cmd.Flags().Float64("income", 0, "Annual income")
	cmd.Flags().String("out", report.Filename, "Output file path")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}
