package service

import (
	"errors"
	"math"
	"strings"
	"testing"

	"acquisition-calc/domain"
)

func fieldsOf(t *testing.T, err error) map[string]bool {
	t.Helper()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	out := map[string]bool{}
	for _, fe := range verrs {
		out[fe.Field] = true
	}
	return out
}

func TestValidateScenario_DefaultsAreValid(t *testing.T) {
	if err := ValidateScenario(domain.DefaultScenario()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateScenario_BusinessName(t *testing.T) {
	s := domain.DefaultScenario()
	s.BusinessName = "   "
	if fields := fieldsOf(t, ValidateScenario(s)); !fields["businessName"] {
		t.Error("expected businessName to be required")
	}

	s.BusinessName = strings.Repeat("a", MaxBusinessNameLength)
	if err := ValidateScenario(s); err != nil {
		t.Errorf("a %d character name should be accepted: %v", MaxBusinessNameLength, err)
	}

	s.BusinessName = strings.Repeat("é", MaxBusinessNameLength+1)
	if fields := fieldsOf(t, ValidateScenario(s)); !fields["businessName"] {
		t.Error("expected businessName length to be enforced")
	}
}

func TestValidateScenario_Ranges(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*domain.BusinessScenario)
	}{
		{"price", func(s *domain.BusinessScenario) { s.Price = -1 }},
		{"price", func(s *domain.BusinessScenario) { s.Price = MaxDealAmount + 1 }},
		{"sde", func(s *domain.BusinessScenario) { s.SDE = math.NaN() }},
		{"optionalSalary", func(s *domain.BusinessScenario) { s.OptionalSalary = MaxOperatingAmount + 1 }},
		{"capex", func(s *domain.BusinessScenario) { s.Capex = math.Inf(1) }},
		{"pctDownPayment", func(s *domain.BusinessScenario) { s.PctDownPayment = 100.5 }},
		{"pctJuniorDebt", func(s *domain.BusinessScenario) { s.PctJuniorDebt = -0.1 }},
		{"sbaInterestPercent", func(s *domain.BusinessScenario) { s.SBAInterestPercent = 101 }},
		{"sellerDurationMonths", func(s *domain.BusinessScenario) { s.SellerDurationMonths = 0 }},
		{"juniorDurationMonths", func(s *domain.BusinessScenario) { s.JuniorDurationMonths = 601 }},
	}
	for _, tc := range cases {
		s := domain.DefaultScenario()
		tc.mutate(&s)
		fields := fieldsOf(t, ValidateScenario(s))
		if !fields[tc.field] || len(fields) != 1 {
			t.Errorf("expected only %s to fail, got %v", tc.field, fields)
		}
	}
}

func TestValidateScenario_AllowsOverAllocatedPercentages(t *testing.T) {
	s := domain.DefaultScenario()
	s.PctDownPayment = 80
	s.PctSellerCarry = 40
	if err := ValidateScenario(s); err != nil {
		t.Errorf("percentage sums are reported by reconciliation, not validation: %v", err)
	}
}

func TestValidationErrors_Message(t *testing.T) {
	err := ValidationErrors{{Field: "price", Message: "must be between 0 and 1"}}
	if got := err.Error(); got != "invalid input: price: must be between 0 and 1" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidateLoanTerms(t *testing.T) {
	if err := ValidateLoanTerms(domain.LoanTerms{Principal: 1000, AnnualRatePercent: 5, NumPayments: 12}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	fields := fieldsOf(t, ValidateLoanTerms(domain.LoanTerms{Principal: 0, AnnualRatePercent: -1, NumPayments: 0}))
	for _, f := range []string{"principal", "annualRatePercent", "numPayments"} {
		if !fields[f] {
			t.Errorf("expected %s to fail", f)
		}
	}
}
