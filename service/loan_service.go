package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"acquisition-calc/domain"
	"acquisition-calc/repository"
)

const DefaultQuoteCacheTTL = 10 * time.Minute

type LoanService struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewLoanService creates a LoanService. cache may be nil to disable result
// caching; a nil logger discards output.
func NewLoanService(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultQuoteCacheTTL
	}
	return &LoanService{cache: cache, ttl: ttl, logger: logger}
}

func quoteCacheKey(terms domain.LoanTerms, includeSchedule bool) string {
	return fmt.Sprintf("quote:%g:%g:%d:%t", terms.Principal, terms.AnnualRatePercent, terms.NumPayments, includeSchedule)
}

// Quote prices a single tranche. Figures are rounded to cents for display;
// the schedule is only built when asked for.
func (s *LoanService) Quote(
	ctx context.Context,
	terms domain.LoanTerms,
	includeSchedule bool,
) (domain.LoanQuote, error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return domain.LoanQuote{}, err
	}

	key := quoteCacheKey(terms, includeSchedule)
	if quote, ok := s.cached(ctx, key); ok {
		return quote, nil
	}

	m := trancheMetrics(terms)
	total := m.MonthlyPayment * float64(terms.NumPayments)

	quote := domain.LoanQuote{
		MonthlyPayment: domain.Round2(m.MonthlyPayment),
		TotalPayment:   domain.Round2(total),
		TotalInterest:  domain.Round2(total - terms.Principal),
		Interest5Yr:    domain.Round2(m.Interest5Yr),
		Interest10Yr:   domain.Round2(m.Interest10Yr),
		Balance5Yr:     domain.Round2(m.Balance5Yr),
		Balance10Yr:    domain.Round2(m.Balance10Yr),
	}

	if includeSchedule {
		rows := Schedule(terms)
		for i := range rows {
			rows[i] = roundRow(rows[i])
		}
		quote.Schedule = rows
	}

	s.logger.Debug("loan quoted",
		zap.Float64("principal", terms.Principal),
		zap.Float64("rate", terms.AnnualRatePercent),
		zap.Int("payments", terms.NumPayments),
		zap.Float64("monthly_payment", quote.MonthlyPayment),
	)

	// Caching is not critical; a failed write only costs a recompute.
	if s.cache != nil {
		if raw, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warn("failed to cache loan quote", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return quote, nil
}

func (s *LoanService) cached(ctx context.Context, key string) (domain.LoanQuote, bool) {
	if s.cache == nil {
		return domain.LoanQuote{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.LoanQuote{}, false
	}
	var quote domain.LoanQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		s.logger.Warn("discarding unreadable cached quote", zap.String("key", key), zap.Error(err))
		return domain.LoanQuote{}, false
	}
	return quote, true
}

func roundRow(r domain.AmortizationRow) domain.AmortizationRow {
	return domain.AmortizationRow{
		Month:     r.Month,
		Payment:   domain.Round2(r.Payment),
		Interest:  domain.Round2(r.Interest),
		Principal: domain.Round2(r.Principal),
		Balance:   domain.Round2(r.Balance),
	}
}
