package domain

// DSCRRating buckets a debt-service coverage ratio for display.
type DSCRRating struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const (
	DSCRStrongThreshold     = 1.50
	DSCRAcceptableThreshold = 1.25
)

var (
	DSCRStrong     = DSCRRating{Label: "Strong", Color: "green"}
	DSCRAcceptable = DSCRRating{Label: "Acceptable", Color: "amber"}
	DSCRWeak       = DSCRRating{Label: "Weak", Color: "red"}
)

// ClassifyDSCR maps a ratio onto the lender threshold table. Both
// thresholds are inclusive lower bounds.
func ClassifyDSCR(dscr float64) DSCRRating {
	switch {
	case dscr >= DSCRStrongThreshold:
		return DSCRStrong
	case dscr >= DSCRAcceptableThreshold:
		return DSCRAcceptable
	default:
		return DSCRWeak
	}
}
