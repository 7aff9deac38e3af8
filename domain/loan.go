package domain

// LoanTerms describes one financing tranche.
type LoanTerms struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	NumPayments       int     `json:"numPayments" yaml:"numPayments"`
}

type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type LoanQuote struct {
	MonthlyPayment float64           `json:"monthlyPayment"`
	TotalPayment   float64           `json:"totalPayment"`
	TotalInterest  float64           `json:"totalInterest"`
	Interest5Yr    float64           `json:"interest5Yr"`
	Interest10Yr   float64           `json:"interest10Yr"`
	Balance5Yr     float64           `json:"balance5Yr"`
	Balance10Yr    float64           `json:"balance10Yr"`
	Schedule       []AmortizationRow `json:"schedule,omitempty"`
}
