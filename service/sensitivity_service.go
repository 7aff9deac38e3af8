package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"acquisition-calc/domain"
)

type SensitivityService struct {
	logger *zap.Logger
}

func NewSensitivityService(logger *zap.Logger) *SensitivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SensitivityService{logger: logger}
}

// SBATerms re-runs the valuation for each SBA duration in the requested
// range and reports how coverage moves with the term.
func (s *SensitivityService) SBATerms(
	input domain.SensitivityInput,
) (domain.SensitivityResult, error) {
	if err := ValidateScenario(input.Scenario); err != nil {
		return domain.SensitivityResult{}, err
	}

	step := input.StepMonths
	if step == 0 {
		step = DefaultSensitivityStep
	}
	if step < 0 {
		return domain.SensitivityResult{}, errors.New("step must be positive")
	}
	if input.MinTermMonths < MinTermMonths || input.MaxTermMonths > MaxTermMonths {
		return domain.SensitivityResult{}, fmt.Errorf("terms must be between %d and %d months", MinTermMonths, MaxTermMonths)
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return domain.SensitivityResult{}, errors.New("minimum term is greater than maximum term")
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxSensitivityRangeMonths {
		return domain.SensitivityResult{}, fmt.Errorf("term range exceeds %d months", MaxSensitivityRangeMonths)
	}

	var result domain.SensitivityResult
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term += step {
		scenario := input.Scenario
		scenario.SBADurationMonths = term

		v := Valuate(scenario)
		rating := domain.ClassifyDSCR(v.DSCR)
		result.Terms = append(result.Terms, domain.TermSensitivity{
			TermMonths:        term,
			SBAMonthlyPayment: domain.Round2(v.SBA.MonthlyPayment),
			AnnualCashFlow:    domain.Round2(v.AnnualCashFlow),
			DSCR:              domain.Round2(v.DSCR),
			Rating:            rating,
		})

		if result.MinimumAcceptableTerm == 0 && v.DSCR >= domain.DSCRAcceptableThreshold {
			result.MinimumAcceptableTerm = term
		}
	}

	s.logger.Debug("sba term sensitivity computed",
		zap.Int("terms", len(result.Terms)),
		zap.Int("minimum_acceptable_term", result.MinimumAcceptableTerm),
	)
	return result, nil
}
