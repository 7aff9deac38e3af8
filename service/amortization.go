package service

import (
	"math"

	"acquisition-calc/domain"
)

const (
	FiveYearMonths = 60
	TenYearMonths  = 120
)

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// MonthlyPayment returns the fixed payment that retires principal over
// numPayments months. A zero rate amortizes straight-line.
func MonthlyPayment(principal, annualRatePercent float64, numPayments int) float64 {
	if principal <= 0 || numPayments <= 0 {
		return 0
	}

	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return principal / float64(numPayments)
	}

	growth := math.Pow(1+r, float64(numPayments))
	return principal * (r * growth) / (growth - 1)
}

// InterestPaid returns the interest accrued over the first months payments.
func InterestPaid(principal, annualRatePercent float64, numPayments, months int) float64 {
	interest, _ := amortize(principal, annualRatePercent, numPayments, months, nil)
	return interest
}

// RemainingBalance returns the principal still owed after monthsPaid
// payments, never below zero.
func RemainingBalance(principal, annualRatePercent float64, numPayments, monthsPaid int) float64 {
	_, balance := amortize(principal, annualRatePercent, numPayments, monthsPaid, nil)
	return math.Max(0, balance)
}

// Schedule returns one row per payment for the full life of the loan.
func Schedule(terms domain.LoanTerms) []domain.AmortizationRow {
	if terms.Principal <= 0 || terms.NumPayments <= 0 {
		return nil
	}
	rows := make([]domain.AmortizationRow, 0, terms.NumPayments)
	amortize(terms.Principal, terms.AnnualRatePercent, terms.NumPayments, terms.NumPayments, func(row domain.AmortizationRow) {
		row.Balance = math.Max(0, row.Balance)
		rows = append(rows, row)
	})
	return rows
}

// amortize is the single stepping rule behind InterestPaid, RemainingBalance
// and Schedule. It walks min(months, numPayments) payments and returns the
// accumulated interest and the unclamped ending balance.
func amortize(
	principal, annualRatePercent float64,
	numPayments, months int,
	visit func(domain.AmortizationRow),
) (interest, balance float64) {
	if principal <= 0 || numPayments <= 0 {
		return 0, 0
	}

	payment := MonthlyPayment(principal, annualRatePercent, numPayments)
	r := monthlyRate(annualRatePercent)
	if months > numPayments {
		months = numPayments
	}

	balance = principal
	for m := 1; m <= months; m++ {
		interestPayment := balance * r
		interest += interestPayment
		balance -= payment - interestPayment

		if visit != nil {
			visit(domain.AmortizationRow{
				Month:     m,
				Payment:   payment,
				Interest:  interestPayment,
				Principal: payment - interestPayment,
				Balance:   balance,
			})
		}
	}
	return interest, balance
}

func trancheMetrics(terms domain.LoanTerms) domain.TrancheMetrics {
	p, rate, n := terms.Principal, terms.AnnualRatePercent, terms.NumPayments
	return domain.TrancheMetrics{
		Principal:      p,
		MonthlyPayment: MonthlyPayment(p, rate, n),
		Interest5Yr:    InterestPaid(p, rate, n, FiveYearMonths),
		Interest10Yr:   InterestPaid(p, rate, n, TenYearMonths),
		Balance5Yr:     RemainingBalance(p, rate, n, FiveYearMonths),
		Balance10Yr:    RemainingBalance(p, rate, n, TenYearMonths),
	}
}
