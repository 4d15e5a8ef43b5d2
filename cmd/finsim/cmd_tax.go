package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/output"
	"github.com/rpgo/career-simulator/pkg/decimal"
	"github.com/spf13/cobra"
)

func newTaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Show the tax breakdown for one salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := calculation.TaxInput{}
			in.State, _ = cmd.Flags().GetString("state")
			in.Year, _ = cmd.Flags().GetInt("year")

			parsed := make(map[string]decimal.Money)
			for _, flag := range []string{"salary", "traditional-401k", "roth-401k", "traditional-ira", "roth-ira"} {
				raw, _ := cmd.Flags().GetString(flag)
				m, err := decimal.NewMoneyFromString(raw)
				if err != nil {
					return fmt.Errorf("--%s: %w", flag, err)
				}
				parsed[flag] = m.Round()
			}
			in.Salary = parsed["salary"].Decimal
			in.Traditional401k = parsed["traditional-401k"].Decimal
			in.Roth401k = parsed["roth-401k"].Decimal
			in.TraditionalIRA = parsed["traditional-ira"].Decimal
			in.RothIRA = parsed["roth-ira"].Decimal

			result := calculation.NewTaxCalculator().Calculate(in)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "TAX BREAKDOWN (%d, %s)\n", result.Year, result.State)
			fmt.Fprintln(w, "================================")
			fmt.Fprintf(w, "Salary:            %s\n", output.FormatCurrency(result.Salary))
			fmt.Fprintf(w, "401k (capped):     %s of %s\n", output.FormatCurrency(result.Total401k), output.FormatCurrency(result.ContributionLimit))
			fmt.Fprintf(w, "Taxable income:    %s\n", output.FormatCurrency(result.TaxableIncome))
			for _, b := range result.Brackets {
				fmt.Fprintf(w, "  %6s bracket:   %s\n", output.FormatRate(b.Rate), output.FormatCurrency(b.Tax))
			}
			fmt.Fprintf(w, "Federal tax:       %s\n", output.FormatCurrency(result.FederalTax))
			fmt.Fprintf(w, "State tax:         %s (%s)\n", output.FormatCurrency(result.StateTax), output.FormatRate(result.StateRate))
			fmt.Fprintf(w, "Social Security:   %s\n", output.FormatCurrency(result.SocialSecurity))
			fmt.Fprintf(w, "Medicare:          %s\n", output.FormatCurrency(result.Medicare))
			fmt.Fprintf(w, "Misc deductions:   %s\n", output.FormatCurrency(result.MiscDeductions))
			fmt.Fprintf(w, "Total tax:         %s\n", output.FormatCurrency(result.TotalTax))
			fmt.Fprintf(w, "After-tax income:  %s\n", output.FormatCurrency(result.AfterTaxIncome))
			fmt.Fprintf(w, "Monthly take-home: %s\n", decimal.NewMoneyFromDecimal(result.AfterTaxIncome).Monthly().Round().Format())
			fmt.Fprintf(w, "Effective rate:    %s\n", output.FormatPercentage(result.EffectiveRate))
			fmt.Fprintf(w, "Marginal rate:     %s\n", output.FormatRate(result.MarginalRate))
			return nil
		},
	}
	cmd.Flags().String("salary", "0", "Gross annual salary")
	cmd.Flags().String("state", "Texas", "State of residence (name or code)")
	cmd.Flags().Int("year", time.Now().Year(), "Tax year, selects the 401k contribution limit")
	cmd.Flags().String("traditional-401k", "0", "Traditional 401k contribution for the year")
	cmd.Flags().String("roth-401k", "0", "Roth 401k contribution for the year")
	cmd.Flags().String("traditional-ira", "0", "Traditional IRA contribution for the year")
	cmd.Flags().String("roth-ira", "0", "Roth IRA contribution for the year")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
