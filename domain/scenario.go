package domain

import "time"

// BusinessScenario is the full set of inputs for one acquisition deal.
// Percentages are expressed as 0-100, durations in months.
type BusinessScenario struct {
	BusinessName string `json:"businessName" yaml:"businessName"`

	SDE            float64 `json:"sde" yaml:"sde"`
	Price          float64 `json:"price" yaml:"price"`
	OptionalSalary float64 `json:"optionalSalary" yaml:"optionalSalary"`
	ExtraCosts     float64 `json:"extraCosts" yaml:"extraCosts"`
	Capex          float64 `json:"capex" yaml:"capex"`
	ConsultingFee  float64 `json:"consultingFee" yaml:"consultingFee"`

	PctDownPayment float64 `json:"pctDownPayment" yaml:"pctDownPayment"`
	PctSellerCarry float64 `json:"pctSellerCarry" yaml:"pctSellerCarry"`
	PctJuniorDebt  float64 `json:"pctJuniorDebt" yaml:"pctJuniorDebt"`

	LoanFee      float64 `json:"loanFee" yaml:"loanFee"`
	ClosingCosts float64 `json:"closingCosts" yaml:"closingCosts"`
	OtherFees    float64 `json:"otherFees" yaml:"otherFees"`

	SellerDurationMonths  int     `json:"sellerDurationMonths" yaml:"sellerDurationMonths"`
	SellerInterestPercent float64 `json:"sellerInterestPercent" yaml:"sellerInterestPercent"`
	JuniorDurationMonths  int     `json:"juniorDurationMonths" yaml:"juniorDurationMonths"`
	JuniorInterestPercent float64 `json:"juniorInterestPercent" yaml:"juniorInterestPercent"`
	SBADurationMonths     int     `json:"sbaDurationMonths" yaml:"sbaDurationMonths"`
	SBAInterestPercent    float64 `json:"sbaInterestPercent" yaml:"sbaInterestPercent"`
}

// DefaultScenario returns the values used for any field a caller leaves out.
// Decoding JSON or YAML on top of it keeps the defaults for absent keys.
func DefaultScenario() BusinessScenario {
	return BusinessScenario{
		BusinessName:          "Untitled Business",
		SDE:                   500_000,
		Price:                 1_750_000,
		PctDownPayment:        10,
		PctSellerCarry:        10,
		PctJuniorDebt:         0,
		SellerDurationMonths:  120,
		SellerInterestPercent: 7,
		JuniorDurationMonths:  60,
		JuniorInterestPercent: 8,
		SBADurationMonths:     120,
		SBAInterestPercent:    10,
	}
}

func (s BusinessScenario) SBATerms(principal float64) LoanTerms {
	return LoanTerms{Principal: principal, AnnualRatePercent: s.SBAInterestPercent, NumPayments: s.SBADurationMonths}
}

func (s BusinessScenario) SellerTerms(principal float64) LoanTerms {
	return LoanTerms{Principal: principal, AnnualRatePercent: s.SellerInterestPercent, NumPayments: s.SellerDurationMonths}
}

func (s BusinessScenario) JuniorTerms(principal float64) LoanTerms {
	return LoanTerms{Principal: principal, AnnualRatePercent: s.JuniorInterestPercent, NumPayments: s.JuniorDurationMonths}
}

// Scenario is a stored BusinessScenario with its identity and timestamps.
type Scenario struct {
	ID        string           `json:"id"`
	Scenario  BusinessScenario `json:"scenario"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type ScenarioSummary struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"businessName"`
	Price        float64   `json:"price"`
	SDE          float64   `json:"sde"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s Scenario) Summary() ScenarioSummary {
	return ScenarioSummary{
		ID:           s.ID,
		BusinessName: s.Scenario.BusinessName,
		Price:        s.Scenario.Price,
		SDE:          s.Scenario.SDE,
		UpdatedAt:    s.UpdatedAt,
	}
}
