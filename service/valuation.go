package service

import (
	"math"

	"acquisition-calc/domain"
)

// ReconciliationTolerance is how far the four price components may drift
// from the price before the result is flagged.
const ReconciliationTolerance = 0.01

// Valuate computes the full financial picture of a deal. It is pure: the
// same scenario always yields the same result.
func Valuate(s domain.BusinessScenario) domain.ValuationResult {
	downPayment := s.Price * s.PctDownPayment / 100
	sellerCarry := s.Price * s.PctSellerCarry / 100
	juniorDebt := s.Price * s.PctJuniorDebt / 100

	// A negative loan is not rejected here; amortization treats it as zero.
	sbaNoFees := s.Price - downPayment - sellerCarry - juniorDebt
	sbaWithFees := sbaNoFees + s.LoanFee + s.ClosingCosts + s.OtherFees

	sba := trancheMetrics(s.SBATerms(sbaWithFees))
	seller := trancheMetrics(s.SellerTerms(sellerCarry))
	junior := trancheMetrics(s.JuniorTerms(juniorDebt))

	monthlyPayments := sba.MonthlyPayment + seller.MonthlyPayment + junior.MonthlyPayment
	monthlyCashFlow := s.SDE/12 - monthlyPayments - s.OptionalSalary/12 - s.ExtraCosts/12 - s.Capex/12

	annualDebtService := sba.MonthlyPayment*12 + seller.MonthlyPayment*12 + junior.MonthlyPayment*12
	annualCashFlow := s.SDE - annualDebtService - s.OptionalSalary - s.ExtraCosts - s.Capex

	noi := s.SDE - s.OptionalSalary - s.ExtraCosts - s.Capex
	var dscr float64
	if annualDebtService > 0 {
		dscr = noi / annualDebtService
	}

	var multiple float64
	if s.SDE != 0 {
		multiple = s.Price / s.SDE
	}

	atClose := downPayment + sbaNoFees + juniorDebt
	totalToSeller5 := atClose + seller.MonthlyPayment*FiveYearMonths + seller.Balance5Yr + s.ConsultingFee
	// No balloon term at ten years: the seller note is taken to have run its
	// course, so only the payments actually made are counted.
	sellerMonths10 := min(TenYearMonths, s.SellerDurationMonths)
	totalToSeller10 := atClose + seller.MonthlyPayment*float64(sellerMonths10) + s.ConsultingFee

	reconciled := sbaNoFees + sellerCarry + juniorDebt + downPayment

	return domain.ValuationResult{
		Multiple:               multiple,
		DownPayment:            downPayment,
		SellerCarry:            sellerCarry,
		JuniorDebt:             juniorDebt,
		SBAPrincipalNoFees:     sbaNoFees,
		SBAPrincipalFees:       sbaWithFees,
		SBA:                    sba,
		Seller:                 seller,
		Junior:                 junior,
		MonthlyCashFlow:        monthlyCashFlow,
		AnnualCashFlow:         annualCashFlow,
		NetOperatingIncome:     noi,
		TotalAnnualDebtService: annualDebtService,
		DSCR:                   dscr,
		TotalToSeller5Yr:       totalToSeller5,
		TotalToSeller10Yr:      totalToSeller10,
		ValidationPass:         math.Abs(reconciled-s.Price) < ReconciliationTolerance,
	}
}
