package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

type ValuationHandler struct {
	Sensitivity *service.SensitivityService
	Logger      *zap.Logger
}

type valuationResponse struct {
	Scenario domain.BusinessScenario `json:"scenario"`
	Result   domain.ValuationResult  `json:"result"`
	Rating   domain.DSCRRating       `json:"rating"`
}

func newValuationResponse(s domain.BusinessScenario, r domain.ValuationResult) valuationResponse {
	return valuationResponse{
		Scenario: s,
		Result:   r.Rounded(),
		Rating:   domain.ClassifyDSCR(r.DSCR),
	}
}

func (h *ValuationHandler) Register(r gin.IRouter) {
	g := r.Group("/api/v1/valuations")
	g.POST("", h.valuate)
	g.POST("/sensitivity", h.sensitivity)
}

func (h *ValuationHandler) valuate(c *gin.Context) {
	scenario := domain.DefaultScenario()
	if err := c.ShouldBindJSON(&scenario); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := service.ValidateScenario(scenario); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	Ok(c, newValuationResponse(scenario, service.Valuate(scenario)), nil)
}

func (h *ValuationHandler) sensitivity(c *gin.Context) {
	input := domain.SensitivityInput{Scenario: domain.DefaultScenario()}
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.Sensitivity.SBATerms(input)
	if err != nil {
		var verrs service.ValidationErrors
		if errors.As(err, &verrs) {
			writeServiceError(c, h.Logger, err)
			return
		}
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, result, nil)
}
