package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acquisition-calc/domain"
	"acquisition-calc/service"
)

type ScenarioHandler struct {
	Service *service.ScenarioService
	Logger  *zap.Logger
}

func (h *ScenarioHandler) Register(r gin.IRouter) {
	g := r.Group("/api/v1/scenarios")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/:id/valuation", h.valuation)
}

func scenarioID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return "", false
	}
	return id, true
}

func (h *ScenarioHandler) list(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Ok(c, items, map[string]any{"total": len(items)})
}

func (h *ScenarioHandler) create(c *gin.Context) {
	scenario := domain.DefaultScenario()
	if err := c.ShouldBindJSON(&scenario); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := h.Service.Create(c.Request.Context(), scenario)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Created(c, gin.H{"id": id})
}

func (h *ScenarioHandler) get(c *gin.Context) {
	id, ok := scenarioID(c)
	if !ok {
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Ok(c, rec, nil)
}

func (h *ScenarioHandler) update(c *gin.Context) {
	id, ok := scenarioID(c)
	if !ok {
		return
	}
	// Updates replace the whole record; omitted fields fall back to defaults.
	scenario := domain.DefaultScenario()
	if err := c.ShouldBindJSON(&scenario); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.Service.Update(c.Request.Context(), id, scenario); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}

func (h *ScenarioHandler) delete(c *gin.Context) {
	id, ok := scenarioID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}

func (h *ScenarioHandler) valuation(c *gin.Context) {
	id, ok := scenarioID(c)
	if !ok {
		return
	}
	rec, result, err := h.Service.Valuate(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	Ok(c, newValuationResponse(rec.Scenario, result), map[string]any{"id": rec.ID, "updatedAt": rec.UpdatedAt})
}
