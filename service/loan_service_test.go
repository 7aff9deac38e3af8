package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"acquisition-calc/domain"
	"acquisition-calc/repository"
)

func TestQuote_WithInterest(t *testing.T) {
	service := NewLoanService(nil, 0, nil)

	quote, err := service.Quote(context.Background(), domain.LoanTerms{
		Principal:         175_000,
		AnnualRatePercent: 7,
		NumPayments:       120,
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.MonthlyPayment != 2031.90 {
		t.Errorf("expected 2031.90, got %.2f", quote.MonthlyPayment)
	}
	if quote.Interest5Yr != 49_528.82 {
		t.Errorf("expected 49528.82, got %.2f", quote.Interest5Yr)
	}
	if quote.Balance10Yr != 0 {
		t.Errorf("expected the loan retired at 10 years, got %.2f", quote.Balance10Yr)
	}
	if quote.Schedule != nil {
		t.Errorf("schedule should be omitted unless requested")
	}
}

func TestQuote_ZeroInterest(t *testing.T) {
	service := NewLoanService(nil, 0, nil)

	quote, err := service.Quote(context.Background(), domain.LoanTerms{
		Principal:         1200,
		AnnualRatePercent: 0,
		NumPayments:       12,
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.MonthlyPayment != 100 {
		t.Errorf("expected 100.00, got %.2f", quote.MonthlyPayment)
	}
	if quote.TotalInterest != 0 {
		t.Errorf("expected no interest, got %.2f", quote.TotalInterest)
	}
	if len(quote.Schedule) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(quote.Schedule))
	}
	if quote.Schedule[5].Balance != 600 {
		t.Errorf("expected 600 after six payments, got %.2f", quote.Schedule[5].Balance)
	}
}

func TestQuote_InvalidAmount(t *testing.T) {
	service := NewLoanService(nil, 0, nil)

	_, err := service.Quote(context.Background(), domain.LoanTerms{Principal: 0, AnnualRatePercent: 10, NumPayments: 12}, false)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected validation error for invalid amount, got %v", err)
	}
}

func TestQuote_InvalidTerm(t *testing.T) {
	service := NewLoanService(nil, 0, nil)

	_, err := service.Quote(context.Background(), domain.LoanTerms{Principal: 1000, AnnualRatePercent: 10, NumPayments: 0}, false)
	if err == nil {
		t.Errorf("expected error for invalid term")
	}
}

func TestQuote_ServedFromCache(t *testing.T) {
	ctx := context.Background()
	cache := repository.NewMemoryCache()
	service := NewLoanService(cache, time.Minute, nil)
	terms := domain.LoanTerms{Principal: 175_000, AnnualRatePercent: 7, NumPayments: 120}

	first, err := service.Quote(ctx, terms, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get(ctx, quoteCacheKey(terms, false)); !ok {
		t.Fatal("expected quote to be cached")
	}

	// A planted entry proves the second call reads the cache.
	_ = cache.Set(ctx, quoteCacheKey(terms, false), `{"monthlyPayment":1}`, time.Minute)
	second, err := service.Quote(ctx, terms, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.MonthlyPayment != 1 || first.MonthlyPayment != 2031.90 {
		t.Errorf("expected cached payment, got first=%.2f second=%.2f", first.MonthlyPayment, second.MonthlyPayment)
	}
}

func TestQuote_CorruptCacheEntryIsRecomputed(t *testing.T) {
	ctx := context.Background()
	cache := repository.NewMemoryCache()
	service := NewLoanService(cache, time.Minute, nil)
	terms := domain.LoanTerms{Principal: 1200, AnnualRatePercent: 0, NumPayments: 12}

	_ = cache.Set(ctx, quoteCacheKey(terms, false), "not-json", time.Minute)
	quote, err := service.Quote(ctx, terms, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.MonthlyPayment != 100 {
		t.Errorf("expected recomputed 100.00, got %.2f", quote.MonthlyPayment)
	}
}
