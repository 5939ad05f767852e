package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

type CatalogHandler struct {
	service *analysis.AnalysisService
	loader  *csv.Loader
	log     *zap.Logger
}

func NewCatalogHandler(service *analysis.AnalysisService, log *zap.Logger) *CatalogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{service: service, loader: csv.NewLoader(), log: log}
}

// GET /api/materials?category=insulation
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	materials, err := h.service.Materials(c.Query("category"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category", err)
		return
	}
	response.RespondOK(c, gin.H{"materials": dto.NewMaterialResults(materials)})
}

// POST /api/materials
//
// The body is a material catalog CSV. Materials with an existing name are replaced.
func (h *CatalogHandler) ImportMaterials(c *gin.Context) {
	materials, err := h.loader.ReadMaterials(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_materials", err)
		return
	}
	if err := h.service.AddMaterials(materials); err != nil {
		response.RespondError(c, http.StatusBadRequest, "import_materials_failed", err)
		return
	}
	h.log.Info("materials imported", zap.Int("count", len(materials)))
	response.RespondOK(c, gin.H{"imported": len(materials)})
}

// GET /api/templates?category=etics&popular=true
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	popular := false
	if v := c.Query("popular"); v != "" {
		var err error
		popular, err = strconv.ParseBool(v)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid popular flag %q", v))
			return
		}
	}

	templates, err := h.service.Templates(c.Query("category"), popular)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category", err)
		return
	}
	response.RespondOK(c, gin.H{"templates": dto.NewTemplateResults(templates)})
}
