package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

func newAmortizeCmd() *cobra.Command {
	var (
		terms        domain.LoanTerms
		withSchedule bool
	)
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Quote a single fixed-rate loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			quote, err := service.NewLoanService(nil, 0, nil).Quote(cmd.Context(), terms, withSchedule)
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), quote)
		},
	}
	cmd.Flags().Float64Var(&terms.Principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&terms.AnnualRatePercent, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&terms.NumPayments, "months", 0, "number of monthly payments")
	cmd.Flags().BoolVar(&withSchedule, "schedule", false, "print the month-by-month schedule")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("months")
	return cmd
}

func printQuote(w io.Writer, q domain.LoanQuote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Monthly payment\t%s\n", money(q.MonthlyPayment))
	fmt.Fprintf(tw, "Total paid\t%s\n", money(q.TotalPayment))
	fmt.Fprintf(tw, "Total interest\t%s\n", money(q.TotalInterest))
	fmt.Fprintf(tw, "Interest (5yr)\t%s\n", money(q.Interest5Yr))
	fmt.Fprintf(tw, "Balance (5yr)\t%s\n", money(q.Balance5Yr))
	fmt.Fprintf(tw, "Interest (10yr)\t%s\n", money(q.Interest10Yr))
	fmt.Fprintf(tw, "Balance (10yr)\t%s\n", money(q.Balance10Yr))

	if len(q.Schedule) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Month\tPayment\tInterest\tPrincipal\tBalance")
		for _, row := range q.Schedule {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				row.Month, money(row.Payment), money(row.Interest), money(row.Principal), money(row.Balance))
		}
	}
	return tw.Flush()
}
