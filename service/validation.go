package service

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"acquisition-calc/domain"
)

// FieldError reports one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field that failed validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = append(v.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) amount(field string, value, max float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.fail(field, "must be a finite number")
		return
	}
	if value < 0 || value > max {
		v.fail(field, "must be between 0 and %.0f", max)
	}
}

func (v *validator) months(field string, value int) {
	if value < MinTermMonths || value > MaxTermMonths {
		v.fail(field, "must be between %d and %d months", MinTermMonths, MaxTermMonths)
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// ValidateScenario checks every field range. Percentage allocations that
// add up past the price are left for the reconciliation flag to report.
func ValidateScenario(s domain.BusinessScenario) error {
	var v validator

	name := strings.TrimSpace(s.BusinessName)
	switch {
	case name == "":
		v.fail("businessName", "is required")
	case utf8.RuneCountInString(name) > MaxBusinessNameLength:
		v.fail("businessName", "must be at most %d characters", MaxBusinessNameLength)
	}

	v.amount("sde", s.SDE, MaxDealAmount)
	v.amount("price", s.Price, MaxDealAmount)
	v.amount("optionalSalary", s.OptionalSalary, MaxOperatingAmount)
	v.amount("extraCosts", s.ExtraCosts, MaxOperatingAmount)
	v.amount("capex", s.Capex, MaxOperatingAmount)
	v.amount("consultingFee", s.ConsultingFee, MaxOperatingAmount)
	v.amount("loanFee", s.LoanFee, MaxOperatingAmount)
	v.amount("closingCosts", s.ClosingCosts, MaxOperatingAmount)
	v.amount("otherFees", s.OtherFees, MaxOperatingAmount)

	v.amount("pctDownPayment", s.PctDownPayment, MaxPercent)
	v.amount("pctSellerCarry", s.PctSellerCarry, MaxPercent)
	v.amount("pctJuniorDebt", s.PctJuniorDebt, MaxPercent)
	v.amount("sellerInterestPercent", s.SellerInterestPercent, MaxPercent)
	v.amount("juniorInterestPercent", s.JuniorInterestPercent, MaxPercent)
	v.amount("sbaInterestPercent", s.SBAInterestPercent, MaxPercent)

	v.months("sellerDurationMonths", s.SellerDurationMonths)
	v.months("juniorDurationMonths", s.JuniorDurationMonths)
	v.months("sbaDurationMonths", s.SBADurationMonths)

	return v.err()
}

// ValidateLoanTerms checks a single tranche for a standalone quote.
func ValidateLoanTerms(t domain.LoanTerms) error {
	var v validator
	if t.Principal <= 0 {
		v.fail("principal", "must be greater than 0")
	} else {
		v.amount("principal", t.Principal, MaxDealAmount)
	}
	v.amount("annualRatePercent", t.AnnualRatePercent, MaxPercent)
	v.months("numPayments", t.NumPayments)
	return v.err()
}
