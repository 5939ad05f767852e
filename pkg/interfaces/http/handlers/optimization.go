package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/application/services/optimization"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

type OptimizationHandler struct {
	service *analysis.AnalysisService
}

func NewOptimizationHandler(service *analysis.AnalysisService) *OptimizationHandler {
	return &OptimizationHandler{service: service}
}

// POST /api/optimize
func (h *OptimizationHandler) Optimize(c *gin.Context) {
	req := dto.NewOptimizationRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	report, err := h.service.Optimize(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_scenario", err)
		return
	}
	response.RespondOK(c, report)
}

// GET /api/optimize/presets
func (h *OptimizationHandler) Presets(c *gin.Context) {
	presets := optimization.Presets()
	results := make([]gin.H, len(presets))
	for i, p := range presets {
		results[i] = gin.H{
			"name":                   p.Name,
			"description":            p.Description,
			"lambda":                 p.Lambda,
			"insulation_cost_per_cm": p.InsulationCostPerCm,
			"category":               p.Category.String(),
		}
	}
	response.RespondOK(c, gin.H{"presets": results})
}
