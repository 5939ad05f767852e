package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

// respondLookupError answers 404 for missing assemblies and falls back to
// status for anything else. Missing materials and templates inside a request
// body are the caller's mistake, not a missing resource.
func respondLookupError(c *gin.Context, status int, code string, err error) {
	if errors.Is(err, entities.ErrAssemblyNotFound) {
		response.RespondError(c, http.StatusNotFound, "assembly_not_found", err)
		return
	}
	response.RespondError(c, status, code, err)
}
