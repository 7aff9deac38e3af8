package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acquisition-calc/service"
)

type RouterDeps struct {
	Scenarios   *service.ScenarioService
	Loans       *service.LoanService
	Sensitivity *service.SensitivityService
	// RateLimiter is optional; nil disables limiting on the API routes.
	RateLimiter *RateLimiter
	// TrustedProxies lists the proxy addresses whose X-Forwarded-For is
	// honoured. Empty means the peer address is the client.
	TrustedProxies []string
	Logger         *zap.Logger
}

// NewRouter wires every handler onto a gin engine. Health checks sit
// outside the rate limiter.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))

	health := &HealthHandler{Store: deps.Scenarios}
	health.Register(engine)

	api := engine.Group("")
	if deps.RateLimiter != nil {
		api.Use(RateLimitMiddleware(deps.RateLimiter))
	}

	valuations := &ValuationHandler{Sensitivity: deps.Sensitivity, Logger: logger}
	valuations.Register(api)
	scenarios := &ScenarioHandler{Service: deps.Scenarios, Logger: logger}
	scenarios.Register(api)
	NewLoanHandler(deps.Loans, logger).Register(api)

	return engine, nil
}
