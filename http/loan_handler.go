package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) Register(r gin.IRouter) {
	r.POST("/api/v1/loans/quote", h.Quote)
}

// Quote prices one tranche. Pass ?schedule=true for the full schedule.
func (h *LoanHandler) Quote(c *gin.Context) {
	var terms domain.LoanTerms
	if err := c.ShouldBindJSON(&terms); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	includeSchedule, _ := strconv.ParseBool(c.Query("schedule"))

	quote, err := h.service.Quote(c.Request.Context(), terms, includeSchedule)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	Ok(c, quote, nil)
}
