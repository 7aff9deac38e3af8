package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

func newValuateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "Value a deal from a YAML scenario (defaults when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := domain.DefaultScenario()
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read scenario: %w", err)
				}
				if scenario, err = parseScenario(raw); err != nil {
					return err
				}
			}
			if err := service.ValidateScenario(scenario); err != nil {
				return err
			}
			return printValuation(cmd.OutOrStdout(), scenario, service.Valuate(scenario))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario YAML file")
	return cmd
}

// parseScenario decodes YAML over the defaults so absent keys keep them.
func parseScenario(raw []byte) (domain.BusinessScenario, error) {
	scenario := domain.DefaultScenario()
	if err := yaml.Unmarshal(raw, &scenario); err != nil {
		return domain.BusinessScenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return scenario, nil
}

func printValuation(w io.Writer, s domain.BusinessScenario, r domain.ValuationResult) error {
	// Rate the exact ratio; 1.2496 must not round into Acceptable.
	rating := domain.ClassifyDSCR(r.DSCR)
	r = r.Rounded()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Business", s.BusinessName},
		{"Multiple", fmt.Sprintf("%.2fx", r.Multiple)},
		{"Down payment", money(r.DownPayment)},
		{"Seller carry", money(r.SellerCarry)},
		{"Junior debt", money(r.JuniorDebt)},
		{"SBA loan (no fees)", money(r.SBAPrincipalNoFees)},
		{"SBA loan (with fees)", money(r.SBAPrincipalFees)},
		{"SBA monthly payment", money(r.SBA.MonthlyPayment)},
		{"Seller monthly payment", money(r.Seller.MonthlyPayment)},
		{"Junior monthly payment", money(r.Junior.MonthlyPayment)},
		{"Annual debt service", money(r.TotalAnnualDebtService)},
		{"Net operating income", money(r.NetOperatingIncome)},
		{"Annual cash flow", money(r.AnnualCashFlow)},
		{"Monthly cash flow", money(r.MonthlyCashFlow)},
		{"Total to seller (5yr)", money(r.TotalToSeller5Yr)},
		{"Total to seller (10yr)", money(r.TotalToSeller10Yr)},
		{"DSCR", fmt.Sprintf("%.2f (%s)", r.DSCR, rating.Label)},
		{"Reconciled", fmt.Sprintf("%t", r.ValidationPass)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value)
	}
	return tw.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
