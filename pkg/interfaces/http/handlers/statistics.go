package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

type StatisticsHandler struct {
	service *analysis.AnalysisService
	log     *zap.Logger
}

func NewStatisticsHandler(service *analysis.AnalysisService, log *zap.Logger) *StatisticsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatisticsHandler{service: service, log: log}
}

// GET /api/statistics
func (h *StatisticsHandler) Get(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		h.log.Error("read statistics failed", zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, "load_statistics_failed", err)
		return
	}
	response.RespondOK(c, stats)
}

// DELETE /api/statistics
func (h *StatisticsHandler) Reset(c *gin.Context) {
	if err := h.service.ResetStatistics(c.Request.Context()); err != nil {
		h.log.Error("reset statistics failed", zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, "reset_statistics_failed", err)
		return
	}
	response.RespondNoContent(c)
}
