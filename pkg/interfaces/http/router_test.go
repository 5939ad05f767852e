package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"github.com/vsinha/wallcalc/pkg/application/dto"
	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/infrastructure/catalog"
	"github.com/vsinha/wallcalc/pkg/infrastructure/config"
	"github.com/vsinha/wallcalc/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/wallcalc/pkg/interfaces/bootstrap"
	"github.com/vsinha/wallcalc/pkg/interfaces/http/response"
)

const eticsBody = `{
	"name": "ETICS",
	"layers": [
		{"material": "Lime plaster", "thickness": 15},
		{"material": "Solid brick", "thickness": 300},
		{"material": "EPS 20", "thickness": 120},
		{"material": "Cement plaster", "thickness": 8}
	]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("")
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)
	app, err := bootstrap.New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	return NewServerForService(app.Service, logger)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env response.ErrorEnvelope
	decode(t, rec, &env)
	return env.Error.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, nethttp.MethodGet, "/healthz", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPost, "/api/assemblies/analyze", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var report dto.AssemblyReport
	decode(t, rec, &report)
	assert.Equal(t, "ETICS", report.Name)
	assert.Len(t, report.Layers, 4)
	assert.InDelta(t, 443, report.TotalThickness, 1e-9)
	assert.Less(t, report.SteadyState.ThermalTransmittance, 0.35)
	require.NotNil(t, report.Bridges)
	assert.Len(t, report.Bridges.Bridges, 3)
	assert.Equal(t, 20.0, report.Climate.InteriorTemperature)
}

func TestAnalyze_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"layers": [`, "invalid_request"},
		{"unknown material", `{"layers": [{"material": "Unobtainium", "thickness": 100}]}`, "invalid_assembly"},
		{"no layers", `{"layers": []}`, "invalid_assembly"},
		{"unknown template", `{"template": "Igloo"}`, "invalid_assembly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, nethttp.MethodPost, "/api/assemblies/analyze", tt.body)
			assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestAnalyze_TemplateWithoutBridges(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPost, "/api/assemblies/analyze",
		`{"template": "ETICS - standard", "bridges": {"enabled": false}}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var report dto.AssemblyReport
	decode(t, rec, &report)
	assert.Equal(t, "ETICS - standard", report.Name)
	assert.Nil(t, report.Bridges)
}

func TestVisualization(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPost, "/api/assemblies/visualization?scheme=thermal", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var v struct {
		Layers []struct {
			MaterialName string `json:"material_name"`
		} `json:"layers"`
		Scheme string `json:"scheme"`
	}
	decode(t, rec, &v)
	assert.Len(t, v.Layers, 4)
	assert.Equal(t, "Lime plaster", v.Layers[0].MaterialName)

	rec = do(t, s, nethttp.MethodPost, "/api/assemblies/visualization?scheme=sepia", eticsBody)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPost, "/api/assemblies/export?format=xlsx", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="ETICS.xlsx"`)
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Layers")

	rec = do(t, s, nethttp.MethodPost, "/api/assemblies/export?format=png", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err = png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)

	rec = do(t, s, nethttp.MethodPost, "/api/assemblies/export?format=html", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Solid brick")

	rec = do(t, s, nethttp.MethodPost, "/api/assemblies/export?format=pdf", eticsBody)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_format", errorCode(t, rec))

	rec = do(t, s, nethttp.MethodGet, "/api/statistics", "")
	var stats dto.StatisticsReport
	decode(t, rec, &stats)
	assert.Equal(t, int64(3), stats.Exports)
}

func TestAssemblyLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPut, "/api/assemblies/My%20wall", eticsBody)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var saved struct {
		Name   string `json:"name"`
		Layers []struct {
			Material  string  `json:"material"`
			Thickness float64 `json:"thickness"`
		} `json:"layers"`
	}
	decode(t, rec, &saved)
	assert.Equal(t, "My wall", saved.Name)
	require.Len(t, saved.Layers, 4)
	assert.Equal(t, "EPS 20", saved.Layers[2].Material)

	rec = do(t, s, nethttp.MethodGet, "/api/assemblies", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var list struct {
		Assemblies []dto.AssemblySummary `json:"assemblies"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Assemblies, 1)
	assert.Equal(t, 4, list.Assemblies[0].Layers)
	assert.InDelta(t, 443, list.Assemblies[0].TotalThickness, 1e-9)

	rec = do(t, s, nethttp.MethodGet, "/api/assemblies/My%20wall", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = do(t, s, nethttp.MethodGet, "/api/assemblies/My%20wall/analysis", "")
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var report dto.AssemblyReport
	decode(t, rec, &report)
	assert.Equal(t, "My wall", report.Name)

	rec = do(t, s, nethttp.MethodDelete, "/api/assemblies/My%20wall", "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = do(t, s, nethttp.MethodGet, "/api/assemblies/My%20wall", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "assembly_not_found", errorCode(t, rec))

	rec = do(t, s, nethttp.MethodDelete, "/api/assemblies/My%20wall", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = do(t, s, nethttp.MethodGet, "/api/assemblies/My%20wall/analysis", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

// failingAssemblyStore rejects every write, like a store whose disk is full
type failingAssemblyStore struct {
	*memory.AssemblyRepository
}

func (failingAssemblyStore) SaveAssembly(context.Context, *entities.SavedAssembly) error {
	return errors.New("disk full")
}

func TestSaveAssembly_ErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	materials, err := catalog.NewMaterialRepository()
	require.NoError(t, err)
	templates, err := catalog.NewTemplateRepository()
	require.NoError(t, err)
	service := analysis.NewAnalysisService(materials, templates,
		failingAssemblyStore{memory.NewAssemblyRepository()}, memory.NewStatisticsRepository(),
		nil, analysis.DefaultSettings(), logger)
	s := NewServerForService(service, logger)

	rec := do(t, s, nethttp.MethodPut, "/api/assemblies/Wall", `{"layers": [{"material": "Unobtainium", "thickness": 100}]}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_assembly", errorCode(t, rec))

	rec = do(t, s, nethttp.MethodPut, "/api/assemblies/Wall", eticsBody)
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "save_assembly_failed", errorCode(t, rec))
}

func TestOptimize(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, nethttp.MethodPost, "/api/optimize", `{"preset": "PUR board", "area": 150}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var report dto.OptimizationReport
	decode(t, rec, &report)
	assert.Equal(t, "PUR board", report.Input.MaterialName)
	assert.InDelta(t, 0.023, report.Input.Lambda, 1e-12)
	assert.Equal(t, 150.0, report.Input.Area)
	assert.Len(t, report.DataPoints, 99)
	assert.Greater(t, report.Optimal.Thickness, 0.0)

	rec = do(t, s, nethttp.MethodPost, "/api/optimize", `{"lambda": 0}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_scenario", errorCode(t, rec))

	rec = do(t, s, nethttp.MethodPost, "/api/optimize", `{"preset": "Straw"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = do(t, s, nethttp.MethodGet, "/api/optimize/presets", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var presets struct {
		Presets []struct {
			Name   string  `json:"name"`
			Lambda float64 `json:"lambda"`
		} `json:"presets"`
	}
	decode(t, rec, &presets)
	assert.Len(t, presets.Presets, 5)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)

	var materials struct {
		Materials []dto.MaterialResult `json:"materials"`
	}
	rec := do(t, s, nethttp.MethodGet, "/api/materials", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	decode(t, rec, &materials)
	assert.Len(t, materials.Materials, 50)

	rec = do(t, s, nethttp.MethodGet, "/api/materials?category=insulation", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	decode(t, rec, &materials)
	assert.Len(t, materials.Materials, 8)

	rec = do(t, s, nethttp.MethodGet, "/api/materials?category=cheese", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var templates struct {
		Templates []dto.TemplateResult `json:"templates"`
	}
	rec = do(t, s, nethttp.MethodGet, "/api/templates?popular=true", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	decode(t, rec, &templates)
	assert.Len(t, templates.Templates, 6)

	rec = do(t, s, nethttp.MethodGet, "/api/templates?category=etics", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	decode(t, rec, &templates)
	assert.Len(t, templates.Templates, 3)

	rec = do(t, s, nethttp.MethodGet, "/api/templates?popular=maybe", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestImportMaterials(t *testing.T) {
	s := newTestServer(t)

	csvBody := "name,category,lambda,density,specific_heat,mu,price_per_m3,manufacturer,air_gap,fixed_resistance\n" +
		"Hempcrete,other,0.07,330,1500,5,1200,Local,false,\n"
	req := httptest.NewRequest(nethttp.MethodPost, "/api/materials", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, nethttp.MethodPost, "/api/assemblies/analyze",
		`{"layers": [{"material": "Hempcrete", "thickness": 300}]}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, nethttp.MethodPost, "/api/materials", "name,lambda\nBad,1\n")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_materials", errorCode(t, rec))
}

func TestStatistics(t *testing.T) {
	s := newTestServer(t)

	do(t, s, nethttp.MethodPost, "/api/assemblies/analyze", eticsBody)
	do(t, s, nethttp.MethodPost, "/api/optimize", `{}`)

	rec := do(t, s, nethttp.MethodGet, "/api/statistics", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var stats dto.StatisticsReport
	decode(t, rec, &stats)
	assert.Equal(t, int64(1), stats.Calculations)
	assert.Equal(t, int64(4), stats.LayersAnalysed)
	assert.Equal(t, int64(1), stats.Optimizations)

	rec = do(t, s, nethttp.MethodDelete, "/api/statistics", "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = do(t, s, nethttp.MethodGet, "/api/statistics", "")
	decode(t, rec, &stats)
	assert.Equal(t, int64(0), stats.Calculations)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	cancel()
	require.NoError(t, <-done)
}
