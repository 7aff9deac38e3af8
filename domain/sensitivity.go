package domain

type SensitivityInput struct {
	Scenario      BusinessScenario `json:"scenario"`
	MinTermMonths int              `json:"minTermMonths"`
	MaxTermMonths int              `json:"maxTermMonths"`
	StepMonths    int              `json:"stepMonths"`
}

type TermSensitivity struct {
	TermMonths        int        `json:"termMonths"`
	SBAMonthlyPayment float64    `json:"sbaMonthlyPayment"`
	AnnualCashFlow    float64    `json:"annualCashFlow"`
	DSCR              float64    `json:"dscr"`
	Rating            DSCRRating `json:"rating"`
}

type SensitivityResult struct {
	// MinimumAcceptableTerm is the shortest evaluated SBA term whose DSCR
	// reaches the acceptable threshold, 0 when none does.
	MinimumAcceptableTerm int               `json:"minimumAcceptableTerm"`
	Terms                 []TermSensitivity `json:"terms"`
}
