package domain

import "github.com/shopspring/decimal"

// TrancheMetrics holds the amortization figures for one financing source.
type TrancheMetrics struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Interest5Yr    float64 `json:"interest5Yr"`
	Interest10Yr   float64 `json:"interest10Yr"`
	Balance5Yr     float64 `json:"balance5Yr"`
	Balance10Yr    float64 `json:"balance10Yr"`
}

// ValuationResult is derived from a BusinessScenario on every request and is
// never stored.
type ValuationResult struct {
	Multiple float64 `json:"multiple"`

	DownPayment        float64 `json:"downPayment"`
	SellerCarry        float64 `json:"sellerCarry"`
	JuniorDebt         float64 `json:"juniorDebt"`
	SBAPrincipalNoFees float64 `json:"sbaPrincipalNoFees"`
	SBAPrincipalFees   float64 `json:"sbaPrincipalWithFees"`

	SBA    TrancheMetrics `json:"sba"`
	Seller TrancheMetrics `json:"seller"`
	Junior TrancheMetrics `json:"junior"`

	MonthlyCashFlow        float64 `json:"monthlyCashFlow"`
	AnnualCashFlow         float64 `json:"annualCashFlow"`
	NetOperatingIncome     float64 `json:"netOperatingIncome"`
	TotalAnnualDebtService float64 `json:"totalAnnualDebtService"`
	DSCR                   float64 `json:"dscr"`
	TotalToSeller5Yr       float64 `json:"totalToSeller5Yr"`
	TotalToSeller10Yr      float64 `json:"totalToSeller10Yr"`
	ValidationPass         bool    `json:"validationPass"`
}

// TotalMonthlyPayment is the sum of the three tranche payments.
func (r ValuationResult) TotalMonthlyPayment() float64 {
	return r.SBA.MonthlyPayment + r.Seller.MonthlyPayment + r.Junior.MonthlyPayment
}

// Rounded returns a copy for display: currency to cents, ratios to two places.
func (r ValuationResult) Rounded() ValuationResult {
	out := r
	out.Multiple = round2(r.Multiple)
	out.DownPayment = round2(r.DownPayment)
	out.SellerCarry = round2(r.SellerCarry)
	out.JuniorDebt = round2(r.JuniorDebt)
	out.SBAPrincipalNoFees = round2(r.SBAPrincipalNoFees)
	out.SBAPrincipalFees = round2(r.SBAPrincipalFees)
	out.SBA = r.SBA.Rounded()
	out.Seller = r.Seller.Rounded()
	out.Junior = r.Junior.Rounded()
	out.MonthlyCashFlow = round2(r.MonthlyCashFlow)
	out.AnnualCashFlow = round2(r.AnnualCashFlow)
	out.NetOperatingIncome = round2(r.NetOperatingIncome)
	out.TotalAnnualDebtService = round2(r.TotalAnnualDebtService)
	out.DSCR = round2(r.DSCR)
	out.TotalToSeller5Yr = round2(r.TotalToSeller5Yr)
	out.TotalToSeller10Yr = round2(r.TotalToSeller10Yr)
	return out
}

func (t TrancheMetrics) Rounded() TrancheMetrics {
	return TrancheMetrics{
		Principal:      round2(t.Principal),
		MonthlyPayment: round2(t.MonthlyPayment),
		Interest5Yr:    round2(t.Interest5Yr),
		Interest10Yr:   round2(t.Interest10Yr),
		Balance5Yr:     round2(t.Balance5Yr),
		Balance10Yr:    round2(t.Balance10Yr),
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return round2(v)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
