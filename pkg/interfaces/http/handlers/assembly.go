package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/interfaces/cli/output"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

var exportContentTypes = map[string]string{
	output.FormatText: "text/plain; charset=utf-8",
	output.FormatJSON: "application/json",
	output.FormatCSV:  "text/csv; charset=utf-8",
	output.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	output.FormatPNG:  "image/png",
	output.FormatHTML: "text/html; charset=utf-8",
}

type AssemblyHandler struct {
	service *analysis.AnalysisService
	log     *zap.Logger
}

func NewAssemblyHandler(service *analysis.AnalysisService, log *zap.Logger) *AssemblyHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssemblyHandler{service: service, log: log}
}

// bindAssembly decodes the body over the configured defaults, so omitted
// climate, surface resistances and bridge options keep their defaults
func (h *AssemblyHandler) bindAssembly(c *gin.Context) (dto.AssemblyRequest, bool) {
	req := h.service.NewAssemblyRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return req, false
	}
	return req, true
}

// POST /api/assemblies/analyze
func (h *AssemblyHandler) Analyze(c *gin.Context) {
	req, ok := h.bindAssembly(c)
	if !ok {
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assembly", err)
		return
	}
	response.RespondOK(c, report)
}

// POST /api/assemblies/visualization?scheme=thermal
func (h *AssemblyHandler) Visualization(c *gin.Context) {
	req, ok := h.bindAssembly(c)
	if !ok {
		return
	}

	v, err := h.service.Visualize(c.Request.Context(), req, c.Query("scheme"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assembly", err)
		return
	}
	response.RespondOK(c, v)
}

// POST /api/assemblies/export?format=xlsx
func (h *AssemblyHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", output.FormatJSON))
	contentType, ok := exportContentTypes[format]
	if !ok {
		response.RespondError(c, http.StatusBadRequest, "invalid_format", fmt.Errorf("unsupported export format: %s", format))
		return
	}

	req, ok := h.bindAssembly(c)
	if !ok {
		return
	}
	report, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assembly", err)
		return
	}

	var buf bytes.Buffer
	if err := output.GenerateReport(report, output.Config{Format: format, Writer: &buf}); err != nil {
		h.log.Error("report export failed", zap.String("format", format), zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	h.service.RecordExport(c.Request.Context(), report.Name, format)

	if output.Binary(format) {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(report.Name, format)))
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// GET /api/assemblies
func (h *AssemblyHandler) List(c *gin.Context) {
	assemblies, err := h.service.ListAssemblies(c.Request.Context())
	if err != nil {
		h.log.Error("list assemblies failed", zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, "load_assemblies_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"assemblies": dto.NewAssemblySummaries(assemblies)})
}

// GET /api/assemblies/:name
func (h *AssemblyHandler) Get(c *gin.Context) {
	saved, err := h.service.GetAssembly(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondLookupError(c, http.StatusInternalServerError, "load_assembly_failed", err)
		return
	}
	response.RespondOK(c, saved)
}

// GET /api/assemblies/:name/analysis
func (h *AssemblyHandler) AnalyzeSaved(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.service.LoadRequest(ctx, c.Param("name"), h.service.NewAssemblyRequest())
	if err != nil {
		respondLookupError(c, http.StatusUnprocessableEntity, "restore_failed", err)
		return
	}

	report, err := h.service.Analyze(ctx, *req)
	if err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_assembly", err)
		return
	}
	response.RespondOK(c, report)
}

// PUT /api/assemblies/:name
func (h *AssemblyHandler) Save(c *gin.Context) {
	req, ok := h.bindAssembly(c)
	if !ok {
		return
	}
	req.Name = c.Param("name")

	saved, err := h.service.SaveAssembly(c.Request.Context(), req)
	if errors.Is(err, analysis.ErrInvalidRequest) {
		response.RespondError(c, http.StatusBadRequest, "invalid_assembly", err)
		return
	}
	if err != nil {
		h.log.Error("failed to save assembly", zap.String("name", req.Name), zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, "save_assembly_failed", err)
		return
	}
	response.RespondOK(c, saved)
}

// DELETE /api/assemblies/:name
func (h *AssemblyHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteAssembly(c.Request.Context(), c.Param("name")); err != nil {
		respondLookupError(c, http.StatusInternalServerError, "delete_assembly_failed", err)
		return
	}
	response.RespondNoContent(c)
}

func exportFilename(name, format string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, name)
	if base == "" {
		base = "wall"
	}
	return base + "." + format
}
