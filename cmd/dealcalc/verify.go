package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

type checkResult struct {
	Name string
	Err  error
}

type check struct {
	name string
	run  func() error
}

func within(name string, got, want, tol float64) error {
	if math.Abs(got-want) > tol {
		return fmt.Errorf("%s: got %.4f, want %.2f", name, got, want)
	}
	return nil
}

// referenceChecks exercise the engine against hand-checked figures.
func referenceChecks() []check {
	return []check{
		{"reference loan payment", func() error {
			return within("payment", service.MonthlyPayment(175000, 7, 120), 2031.90, 0.01)
		}},
		{"reference loan at five years", func() error {
			if err := within("interest", service.InterestPaid(175000, 7, 120, 60), 49528.82, 0.01); err != nil {
				return err
			}
			return within("balance", service.RemainingBalance(175000, 7, 120, 60), 102614.92, 0.01)
		}},
		{"zero rate is straight line", func() error {
			return within("payment", service.MonthlyPayment(120000, 0, 120), 1000, 1e-9)
		}},
		{"consistency law", func() error {
			loans := []domain.LoanTerms{
				{Principal: 175000, AnnualRatePercent: 7, NumPayments: 120},
				{Principal: 1400000, AnnualRatePercent: 10, NumPayments: 120},
				{Principal: 50000, AnnualRatePercent: 0, NumPayments: 36},
			}
			for _, l := range loans {
				pmt := service.MonthlyPayment(l.Principal, l.AnnualRatePercent, l.NumPayments)
				for _, w := range []int{1, 12, 60, l.NumPayments} {
					interest := service.InterestPaid(l.Principal, l.AnnualRatePercent, l.NumPayments, w)
					balance := service.RemainingBalance(l.Principal, l.AnnualRatePercent, l.NumPayments, w)
					lhs := pmt*float64(w) - interest + balance
					if err := within(fmt.Sprintf("%.0f@%d", l.Principal, w), lhs, l.Principal, 1e-6*l.Principal); err != nil {
						return err
					}
				}
			}
			return nil
		}},
		{"default scenario reconciles", func() error {
			return reconciles(domain.DefaultScenario())
		}},
		{"financed fees reconcile", func() error {
			s := domain.DefaultScenario()
			s.PctJuniorDebt = 5
			s.LoanFee = 25000
			s.ClosingCosts = 15000
			s.OtherFees = 5000
			return reconciles(s)
		}},
	}
}

func reconciles(s domain.BusinessScenario) error {
	if !service.Valuate(s).ValidationPass {
		return fmt.Errorf("capital stack does not add up to price %.2f", s.Price)
	}
	return nil
}

func runChecks(checks []check) []checkResult {
	results := make([]checkResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, checkResult{Name: c.name, Err: c.run()})
	}
	return results
}

func report(w io.Writer, results []checkResult) (failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok    %s\n", r.Name)
	}
	return failed
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the engine's reference checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failed := report(cmd.OutOrStdout(), runChecks(referenceChecks())); failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
